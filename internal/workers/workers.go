// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/jonboulle/clockwork"
)

// Workers groups the background workers of the application.
type Workers struct {
	Retry *RetryScheduler

	workers []Worker
}

// NewWorkers builds every background worker on the given clock.
func NewWorkers(clock clockwork.Clock, log *logger.Logger) *Workers {
	retry := NewRetryScheduler(clock, log)

	return &Workers{
		Retry:   retry,
		workers: []Worker{retry},
	}
}

// Stop stops the workers in registration order.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
