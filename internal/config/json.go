// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		GW2APIKey string `json:"gw2_api_key"`
		KPID      string `json:"kp_id"`
		LogLevel  string `json:"log_level"`
		Version   string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		GW2Address        string   `json:"gw2_address"`
		KPAddress         string   `json:"kp_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		LinkedConcurrency int      `json:"linked_concurrency"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Refresh struct {
		AutoRetry             bool  `json:"auto_retry"`
		RetryDelayMinutes     int   `json:"retry_delay_minutes"`
		OnKill                bool  `json:"on_kill"`
		OnKillOnlyBoss        bool  `json:"on_kill_only_boss"`
		OnMapChange           bool  `json:"on_map_change"`
		MapChangeDelayMinutes int   `json:"map_change_delay_minutes"`
		BaselineOnRetry       bool  `json:"baseline_on_retry"`
		TrackedMaps           []int `json:"tracked_maps"`
	} `json:"refresh,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			GW2APIKey: jsonCfg.App.GW2APIKey,
			KPID:      jsonCfg.App.KPID,
			LogLevel:  jsonCfg.App.LogLevel,
			Version:   jsonCfg.App.Version,
		},
		Adapter: Adapter{
			GW2Address:        jsonCfg.Adapter.GW2Address,
			KPAddress:         jsonCfg.Adapter.KPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			LinkedConcurrency: jsonCfg.Adapter.LinkedConcurrency,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Refresh: Refresh{
			AutoRetry:             jsonCfg.Refresh.AutoRetry,
			RetryDelayMinutes:     jsonCfg.Refresh.RetryDelayMinutes,
			OnKill:                jsonCfg.Refresh.OnKill,
			OnKillOnlyBoss:        jsonCfg.Refresh.OnKillOnlyBoss,
			OnMapChange:           jsonCfg.Refresh.OnMapChange,
			MapChangeDelayMinutes: jsonCfg.Refresh.MapChangeDelayMinutes,
			BaselineOnRetry:       jsonCfg.Refresh.BaselineOnRetry,
			TrackedMaps:           jsonCfg.Refresh.TrackedMaps,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
