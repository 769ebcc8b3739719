// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/kp-refresher/internal/adapter"
	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/models"
)

type Services struct {
	RefreshService RefreshService
	AppInfoService AppInfoService
	DiffService    DiffService
}

func NewServices(
	adapters *adapter.Adapters,
	scheduler Scheduler,
	settings config.SettingsProvider,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		RefreshService: NewRefreshService(adapters, scheduler, settings, cfg.App, cfg.Adapter, logger),
		AppInfoService: appInfo,
		DiffService:    NewDiffService(),
	}, nil
}
