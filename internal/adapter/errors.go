// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnauthorized is returned for a rejected credential (HTTP 401, or a
	// GW2 "invalid key" response). Never retried automatically.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for an unknown identity (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned when the remote throttles (HTTP 429).
	ErrRateLimited = errors.New("rate limited")
	// ErrUnavailable is returned on remote server errors (HTTP 5xx).
	ErrUnavailable = errors.New("service unavailable")
	// ErrNetwork wraps transport failures (DNS, connection reset, timeout).
	ErrNetwork = errors.New("network error")
	// ErrBadResponse is returned when a 2xx body cannot be decoded, or for
	// any other unexpected status.
	ErrBadResponse = errors.New("bad response")
)
