// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/kp-refresher/internal/adapter"
	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/handler"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/server"
	"github.com/MKhiriev/kp-refresher/internal/service"
	"github.com/MKhiriev/kp-refresher/internal/workers"
	"github.com/MKhiriev/kp-refresher/models"
	"github.com/jonboulle/clockwork"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("kp-refresher").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("kp-refresher", cfg.App.LogLevel)
	log.Debug().
		Str("gw2_address", cfg.Adapter.GW2Address).
		Str("kp_address", cfg.Adapter.KPAddress).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("gw2_key_set", cfg.App.GW2APIKey != "").
		Str("kp_id", cfg.App.KPID).
		Msg("received configs")

	settings := config.NewMutableSettings(config.NewSettings(cfg.Refresh, models.DefaultTrackedMapIDs))

	adapters, err := adapter.NewAdapters(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	bgWorkers := workers.NewWorkers(clockwork.NewRealClock(), log)
	defer bgWorkers.Stop()

	services, err := service.NewServices(
		adapters,
		bgWorkers.Retry,
		settings,
		*cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, settings, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
