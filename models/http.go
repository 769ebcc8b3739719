// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeltaResponse is returned by the status endpoints of the control API.
type DeltaResponse struct {
	// Entries is the comparison result in game API order.
	Entries []DeltaEntry `json:"entries"`

	// Length is the total number of entries.
	Length int `json:"length"`

	// Pending is the number of entries classified as [OnlyGameAPI].
	Pending int `json:"pending"`
}

// RefreshResponse is the JSON form of [RefreshResult].
type RefreshResponse struct {
	Outcome        RefreshOutcome `json:"outcome"`
	Message        string         `json:"message"`
	RetryScheduled bool           `json:"retry_scheduled"`
	RetryInSeconds int64          `json:"retry_in_seconds,omitempty"`
}

// LinkedRefreshResponse is returned after refreshing linked accounts.
type LinkedRefreshResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// LinkedCountResponse carries the number of linked accounts.
type LinkedCountResponse struct {
	Count int `json:"count"`
}

// CancelScheduleResponse reports whether a pending refresh was cancelled.
type CancelScheduleResponse struct {
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

// MapChangeRequest is sent by the overlay whenever the player changes map.
type MapChangeRequest struct {
	FromMapID int `json:"from_map_id"`
	ToMapID   int `json:"to_map_id"`
}

// MapChangeResponse reports whether the map change scheduled a refresh.
type MapChangeResponse struct {
	Scheduled bool   `json:"scheduled"`
	Message   string `json:"message"`
}

// ErrorResponse is written by the control API when an operation fails.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
