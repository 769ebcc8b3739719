// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/kp-refresher/internal/adapter"
)

var (
	ErrMissingAPIKey         = errors.New("no GW2 API key configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrorKind groups errors by how the orchestrator reacts to them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindAuth is terminal: the credential must be fixed by the user.
	KindAuth
	// KindNotFound is terminal: the KillProof.me identity does not exist.
	KindNotFound
	// KindTransient may succeed later and is eligible for a retry.
	KindTransient
	// KindOther is terminal.
	KindOther
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindTransient:
		return "transient"
	default:
		return "other"
	}
}

// Classify maps an adapter or service error to its [ErrorKind].
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, ErrMissingAPIKey):
		return KindAuth
	case errors.Is(err, adapter.ErrNotFound):
		return KindNotFound
	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, adapter.ErrRateLimited),
		errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransient
	default:
		return KindOther
	}
}

// UserMessage turns err into a short sentence suitable for a notification.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "No GW2 API key configured."
	case errors.Is(err, adapter.ErrUnauthorized):
		return "GW2 API key rejected, check its permissions."
	case errors.Is(err, adapter.ErrNotFound):
		return "KillProof.me account not found."
	case errors.Is(err, adapter.ErrRateLimited):
		return "Too many requests, try again later."
	case Classify(err) == KindTransient:
		return "Service unreachable, try again later."
	case errors.Is(err, context.Canceled):
		return "Request cancelled."
	default:
		return "Unexpected error: " + err.Error()
	}
}
