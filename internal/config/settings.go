// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"sync"
	"time"
)

// Delay bounds, in minutes, for retries and map-change refreshes.
const (
	MinDelayMinutes = 1
	MaxDelayMinutes = 60
)

// ClampMinutes forces n into [MinDelayMinutes, MaxDelayMinutes].
func ClampMinutes(n int) int {
	return max(MinDelayMinutes, min(n, MaxDelayMinutes))
}

// Settings is an immutable snapshot of the refresh policy.
type Settings struct {
	AutoRetry             bool  `json:"auto_retry"`
	RetryDelayMinutes     int   `json:"retry_delay_minutes"`
	RefreshOnKill         bool  `json:"refresh_on_kill"`
	RefreshOnKillOnlyBoss bool  `json:"refresh_on_kill_only_boss"`
	RefreshOnMapChange    bool  `json:"refresh_on_map_change"`
	MapChangeDelayMinutes int   `json:"map_change_delay_minutes"`
	BaselineOnRetry       bool  `json:"baseline_on_retry"`
	TrackedMaps           []int `json:"tracked_maps"`
}

// NewSettings builds a clamped snapshot from the refresh section of the
// structured config. trackedDefault is used when no map list is configured.
func NewSettings(r Refresh, trackedDefault []int) Settings {
	tracked := r.TrackedMaps
	if len(tracked) == 0 {
		tracked = trackedDefault
	}

	return Settings{
		AutoRetry:             r.AutoRetry,
		RetryDelayMinutes:     r.RetryDelayMinutes,
		RefreshOnKill:         r.OnKill,
		RefreshOnKillOnlyBoss: r.OnKillOnlyBoss,
		RefreshOnMapChange:    r.OnMapChange,
		MapChangeDelayMinutes: r.MapChangeDelayMinutes,
		BaselineOnRetry:       r.BaselineOnRetry,
		TrackedMaps:           slices.Clone(tracked),
	}.normalized()
}

func (s Settings) normalized() Settings {
	s.RetryDelayMinutes = ClampMinutes(s.RetryDelayMinutes)
	s.MapChangeDelayMinutes = ClampMinutes(s.MapChangeDelayMinutes)
	s.TrackedMaps = slices.Clone(s.TrackedMaps)
	return s
}

// RetryDelay returns the clamped retry delay.
func (s Settings) RetryDelay() time.Duration {
	return time.Duration(ClampMinutes(s.RetryDelayMinutes)) * time.Minute
}

// MapChangeDelay returns the clamped map-change refresh delay.
func (s Settings) MapChangeDelay() time.Duration {
	return time.Duration(ClampMinutes(s.MapChangeDelayMinutes)) * time.Minute
}

// IsTrackedMap reports whether leaving mapID should trigger a refresh.
func (s Settings) IsTrackedMap(mapID int) bool {
	return slices.Contains(s.TrackedMaps, mapID)
}

// SettingsProvider is polled by the service layer on every operation.
type SettingsProvider interface {
	Settings() Settings
}

// StaticSettings is a SettingsProvider that never changes.
type StaticSettings Settings

// Settings implements [SettingsProvider].
func (s StaticSettings) Settings() Settings {
	return Settings(s).normalized()
}

// MutableSettings is a SettingsProvider whose snapshot can be replaced at
// runtime, e.g. when the overlay toggles a checkbox.
type MutableSettings struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMutableSettings returns a MutableSettings holding initial.
func NewMutableSettings(initial Settings) *MutableSettings {
	return &MutableSettings{settings: initial.normalized()}
}

// Settings implements [SettingsProvider].
func (m *MutableSettings) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.normalized()
}

// Replace swaps the snapshot. Minute values are clamped before storing and
// the stored snapshot is returned.
func (m *MutableSettings) Replace(s Settings) Settings {
	s = s.normalized()

	m.mu.Lock()
	m.settings = s
	m.mu.Unlock()

	return s
}
