// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/kp-refresher/models"
)

// IsRefreshScheduled implements RefreshService.
func (s *refreshService) IsRefreshScheduled() bool {
	_, ok := s.scheduler.Pending()
	return ok
}

// NextScheduledIn implements RefreshService. It returns 0 when nothing is
// scheduled or the refresh is due now.
func (s *refreshService) NextScheduledIn() time.Duration {
	remaining, _ := s.scheduler.Remaining()
	return remaining
}

// CancelSchedule implements RefreshService.
func (s *refreshService) CancelSchedule() bool {
	return s.scheduler.Cancel()
}

// ScheduleStatus implements RefreshService.
func (s *refreshService) ScheduleStatus() models.ScheduleStatus {
	reason, ok := s.scheduler.Pending()
	if !ok {
		return models.ScheduleStatus{Message: "No scheduled refresh"}
	}

	remaining, ok := s.scheduler.Remaining()
	if !ok {
		// fired between the two reads
		return models.ScheduleStatus{Message: "No scheduled refresh"}
	}

	noun := "refresh"
	if reason == ReasonRetry {
		noun = "retry"
	}

	return models.ScheduleStatus{
		Scheduled:        true,
		Reason:           reason,
		RemainingSeconds: int64(remaining.Round(time.Second) / time.Second),
		Message:          formatNextIn(noun, remaining),
	}
}

// HandleMapChange implements RefreshService. Leaving a tracked map for a
// different map arms a refresh after the map-change delay, replacing any
// pending task.
func (s *refreshService) HandleMapChange(_ context.Context, fromMapID, toMapID int) bool {
	settings := s.settings.Settings()

	if !settings.RefreshOnMapChange || fromMapID == toMapID || !settings.IsTrackedMap(fromMapID) {
		return false
	}

	delay := s.scheduler.Arm(settings.MapChangeDelay(), ReasonMapChange, s.scheduledRefresh)
	s.logger.Info().
		Int("from_map", fromMapID).
		Int("to_map", toMapID).
		Dur("delay", delay).
		Msg("map change refresh armed")

	return delay > 0
}
