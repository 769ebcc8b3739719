// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the two remote
// services the refresher talks to: the Guild Wars 2 API ([GameAdapter]) and
// KillProof.me ([ProofAdapter]).
//
// Both implementations are HTTP/REST clients built on resty. Error values
// defined in errors.go are mapped from HTTP status codes and transport
// failures by mapHTTPError and mapTransportError so that callers can use
// [errors.Is] to decide whether a failure is worth retrying. Adapters never
// retry on their own.
package adapter

import (
	"context"

	"github.com/MKhiriev/kp-refresher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GameAdapter reads the authoritative raid progression of a player from the
// Guild Wars 2 API.
type GameAdapter interface {
	// FetchCurrentRecords returns every raid boss known to the game API in
	// its natural order (raid → wing → boss), each flagged as achieved when
	// it was cleared during the current weekly reset. apiKey must carry the
	// "account" and "progression" permissions.
	//
	// Returns [ErrUnauthorized] for an invalid key, [ErrRateLimited] when
	// throttled, [ErrNetwork] on transport failure and [ErrUnavailable] on
	// server errors.
	FetchCurrentRecords(ctx context.Context, apiKey string) (models.RecordSet, error)

	// AccountName returns the account name ("Name.1234") that owns apiKey.
	// It is used as the KillProof.me identity when none is configured.
	AccountName(ctx context.Context, apiKey string) (string, error)
}

// ProofAdapter talks to KillProof.me.
type ProofAdapter interface {
	// FetchRecordedSet returns the clears KillProof.me currently holds for
	// proofID, keyed by GW2 raid event id.
	FetchRecordedSet(ctx context.Context, proofID string) (models.ProofRecordSet, error)

	// TriggerRefresh asks KillProof.me to re-scan the GW2 API for proofID.
	// A refresh cooldown or a gateway outage is reported as
	// [models.TemporarilyUnavailable] with a nil error; rejected requests
	// are [models.Failure]. Unknown ids, bad credentials and throttling are
	// returned as errors.
	TriggerRefresh(ctx context.Context, proofID string) (models.RefreshOutcome, error)

	// ListLinkedAccounts returns the de-duplicated accounts linked to
	// proofID. An empty result is not an error.
	ListLinkedAccounts(ctx context.Context, proofID string) ([]models.LinkedAccount, error)

	// RefreshAll triggers a refresh for every account and aggregates the
	// per-account outcome into one human-readable summary. With no
	// accounts it returns immediately without any request.
	RefreshAll(ctx context.Context, accounts []models.LinkedAccount) string
}
