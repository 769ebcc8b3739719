// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RefreshOutcome is the result of asking the proof service to re-scan.
type RefreshOutcome int

const (
	// Success means the proof service accepted the refresh.
	Success RefreshOutcome = iota
	// TemporarilyUnavailable means the proof service could not refresh right
	// now (cooldown or outage). It is the signal that justifies a retry.
	TemporarilyUnavailable
	// Failure is terminal for the cycle and is never retried automatically.
	Failure
	// NoNewClear means refreshing was conditioned on a new clear and the game
	// API does not show one yet. The game API lags behind, so it is retried
	// like TemporarilyUnavailable.
	NoNewClear
)

// String implements fmt.Stringer.
func (o RefreshOutcome) String() string {
	switch o {
	case Success:
		return "success"
	case TemporarilyUnavailable:
		return "temporarily_unavailable"
	case NoNewClear:
		return "no_new_clear"
	default:
		return "failure"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o RefreshOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IsTransient reports whether the outcome is eligible for a scheduled retry.
func (o RefreshOutcome) IsTransient() bool {
	return o == TemporarilyUnavailable || o == NoNewClear
}

// RefreshResult is what a refresh cycle returns to the presentation layer.
// Message is always set and can be displayed as is.
type RefreshResult struct {
	Outcome        RefreshOutcome `json:"outcome"`
	Message        string         `json:"message"`
	Err            error          `json:"-"`
	RetryScheduled bool           `json:"retry_scheduled"`
	RetryIn        time.Duration  `json:"-"`
}

// ScheduleStatus describes the pending scheduled refresh, if any.
type ScheduleStatus struct {
	Scheduled        bool   `json:"scheduled"`
	Reason           string `json:"reason,omitempty"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Message          string `json:"message"`
}
