// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the inbound transports of the refresher.
package handler

import (
	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/handler/http"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	settings *config.MutableSettings,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || settings == nil {
		return nil, errMissingDependencies
	}

	return &Handlers{
		HTTP: http.NewHandler(services, settings, logger.WithStr("transport", "http")),
	}, nil
}
