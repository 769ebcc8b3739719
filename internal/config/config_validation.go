// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Minute values are not rejected here; they are clamped when read.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.GW2APIKey) == "" {
		return fmt.Errorf("%w: empty GW2 API key", ErrInvalidAppConfigs)
	}

	for _, raw := range []string{cfg.Adapter.GW2Address, cfg.Adapter.KPAddress} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad address %q", ErrInvalidAdapterConfigs, raw)
		}
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerConfigs, err)
	}

	return nil
}
