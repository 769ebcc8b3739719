// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
)

// Adapters groups the outbound clients used by the service layer.
type Adapters struct {
	Game  GameAdapter
	Proof ProofAdapter
}

// NewAdapters builds both HTTP adapters from the adapter section of the
// structured config.
func NewAdapters(cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	game, err := NewGW2Adapter(cfg, log)
	if err != nil {
		return nil, err
	}

	proof, err := NewKillProofAdapter(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{Game: game, Proof: proof}, nil
}
