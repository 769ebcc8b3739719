// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the refresher: the pure
// diff between the game API and KillProof.me views of a player's clears,
// and the refresh orchestrator that decides when to call KillProof.me and
// when to schedule a retry.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/workers"
	"github.com/MKhiriev/kp-refresher/models"
)

// Scheduler reasons.
const (
	ReasonRetry     = "retry"
	ReasonMapChange = "map_change"
)

// DiffService compares the two views of a player's clears.
type DiffService interface {
	// ComputeDelta returns one entry per achieved record, in record order,
	// classified by whether proof already holds it. Inputs are not modified.
	ComputeDelta(records models.RecordSet, proof models.ProofRecordSet) []models.DeltaEntry
}

// Scheduler is the single-slot delayed task holder used by the refresh
// orchestrator. [workers.RetryScheduler] implements it.
type Scheduler interface {
	Arm(delay time.Duration, reason string, action workers.Action) time.Duration
	Cancel() bool
	CancelIf(reason string) bool
	Remaining() (time.Duration, bool)
	Pending() (string, bool)
}

// RefreshService is the orchestration surface consumed by the control API.
type RefreshService interface {
	// Refresh runs one user-initiated refresh cycle. It never returns an
	// error; failures are reported in the result.
	Refresh(ctx context.Context) models.RefreshResult

	// ComputeFullStatus fetches both views and diffs them. The fetched
	// proof set becomes the cached baseline.
	ComputeFullStatus(ctx context.Context) ([]models.DeltaEntry, error)

	// ComputeRecentDelta diffs a fresh game view against the cached proof
	// baseline, fetching the baseline only when none is cached.
	ComputeRecentDelta(ctx context.Context) ([]models.DeltaEntry, error)

	// ListCurrentAccomplishments renders every achieved record annotated
	// with its proof status.
	ListCurrentAccomplishments(ctx context.Context) (string, error)

	RefreshLinkedAccounts(ctx context.Context) string
	LinkedAccountCount(ctx context.Context) int

	IsRefreshScheduled() bool
	NextScheduledIn() time.Duration
	CancelSchedule() bool
	ScheduleStatus() models.ScheduleStatus

	// HandleMapChange schedules a refresh when the player leaves a tracked
	// map and reports whether it did.
	HandleMapChange(ctx context.Context, fromMapID, toMapID int) bool
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
