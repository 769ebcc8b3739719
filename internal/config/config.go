// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// refresher. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds addresses and timeouts of the two remote services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the local control API settings.
	Server Server `envPrefix:"SERVER_"`

	// Refresh holds the refresh and retry policy.
	Refresh Refresh `envPrefix:"REFRESH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds credentials and application-level settings.
type App struct {
	// GW2APIKey is the Guild Wars 2 API key with the "account" and
	// "progression" permissions.
	// Env: APP_GW2_API_KEY
	GW2APIKey string `env:"GW2_API_KEY"`

	// KPID is the KillProof.me identifier of the player. When empty the
	// GW2 account name is used instead.
	// Env: APP_KP_ID
	KPID string `env:"KP_ID"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds addresses and timeouts of the outbound HTTP clients.
type Adapter struct {
	// GW2Address is the base URL of the Guild Wars 2 API.
	// Env: ADAPTER_GW2_ADDRESS
	GW2Address string `env:"GW2_ADDRESS"`

	// KPAddress is the base URL of KillProof.me.
	// Env: ADAPTER_KP_ADDRESS
	KPAddress string `env:"KP_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LinkedConcurrency caps parallel refreshes of linked accounts.
	// Env: ADAPTER_LINKED_CONCURRENCY
	LinkedConcurrency int `env:"LINKED_CONCURRENCY"`
}

// Server holds the settings of the local control API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format the control API
	// listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Refresh holds the refresh and retry policy. Minute values are clamped to
// [MinDelayMinutes, MaxDelayMinutes] when turned into [Settings].
type Refresh struct {
	// AutoRetry schedules a new refresh when KillProof.me was unavailable.
	// Env: REFRESH_AUTO_RETRY
	AutoRetry bool `env:"AUTO_RETRY"`

	// RetryDelayMinutes is the delay before an automatic retry.
	// Env: REFRESH_RETRY_DELAY_MINUTES
	RetryDelayMinutes int `env:"RETRY_DELAY_MINUTES"`

	// OnKill only allows a refresh once a new clear is visible to the GW2 API.
	// Env: REFRESH_ON_KILL
	OnKill bool `env:"ON_KILL"`

	// OnKillOnlyBoss narrows OnKill to final wing bosses.
	// Env: REFRESH_ON_KILL_ONLY_BOSS
	OnKillOnlyBoss bool `env:"ON_KILL_ONLY_BOSS"`

	// OnMapChange schedules a refresh when the player leaves a tracked map.
	// Env: REFRESH_ON_MAP_CHANGE
	OnMapChange bool `env:"ON_MAP_CHANGE"`

	// MapChangeDelayMinutes is the delay of a map-change refresh.
	// Env: REFRESH_MAP_CHANGE_DELAY_MINUTES
	MapChangeDelayMinutes int `env:"MAP_CHANGE_DELAY_MINUTES"`

	// BaselineOnRetry re-fetches the cached KillProof.me baseline after a
	// scheduled retry succeeds instead of only invalidating it.
	// Env: REFRESH_BASELINE_ON_RETRY
	BaselineOnRetry bool `env:"BASELINE_ON_RETRY"`

	// TrackedMaps lists the map ids whose exit triggers a map-change refresh.
	// Env: REFRESH_TRACKED_MAPS (comma separated)
	TrackedMaps []int `env:"TRACKED_MAPS" envSeparator:","`
}

const (
	defaultGW2Address        = "https://api.guildwars2.com"
	defaultKPAddress         = "https://killproof.me"
	defaultServerAddress     = "localhost:8787"
	defaultRequestTimeout    = 15 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
	defaultLinkedConcurrency = 4
	defaultDelayMinutes      = 5
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields left empty by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.GW2Address == "" {
		cfg.Adapter.GW2Address = defaultGW2Address
	}
	if cfg.Adapter.KPAddress == "" {
		cfg.Adapter.KPAddress = defaultKPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.LinkedConcurrency <= 0 {
		cfg.Adapter.LinkedConcurrency = defaultLinkedConcurrency
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultServerAddress
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Refresh.RetryDelayMinutes == 0 {
		cfg.Refresh.RetryDelayMinutes = defaultDelayMinutes
	}
	if cfg.Refresh.MapChangeDelayMinutes == 0 {
		cfg.Refresh.MapChangeDelayMinutes = defaultDelayMinutes
	}
}
