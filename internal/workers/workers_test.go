// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Stop was called.
type mockWorker struct {
	id       int
	order    *[]int
	runCount int
}

func (m *mockWorker) Stop() {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func TestWorkers_Stop_AllWorkersInOrder(t *testing.T) {
	var order []int
	w1 := &mockWorker{id: 1, order: &order}
	w2 := &mockWorker{id: 2, order: &order}
	w3 := &mockWorker{id: 3, order: &order}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3}, order)
	for _, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount)
	}
}

func TestWorkers_Stop_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Stop()
}

func TestNewWorkers_StopsRetryScheduler(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ws := NewWorkers(clock, logger.Nop())
	require.NotNil(t, ws.Retry)

	ws.Retry.Arm(5*time.Minute, "retry", func(_ context.Context) {})
	require.Equal(t, StateArmed, ws.Retry.State())

	ws.Stop()

	assert.Equal(t, StateIdle, ws.Retry.State())
}
