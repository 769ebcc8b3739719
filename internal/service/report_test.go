// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/kp-refresher/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatNextIn(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "Next retry in 0 seconds."},
		{d: time.Second, want: "Next retry in 1 second."},
		{d: 1500 * time.Millisecond, want: "Next retry in 2 seconds."},
		{d: 59 * time.Second, want: "Next retry in 59 seconds."},
		{d: time.Minute, want: "Next retry in 1 minute."},
		{d: 4*time.Minute + time.Second, want: "Next retry in 5 minutes."},
		{d: 60 * time.Minute, want: "Next retry in 60 minutes."},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, formatNextIn("retry", tt.d))
		})
	}
}

func TestFormatAccomplishments_Empty(t *testing.T) {
	assert.Equal(t, "No raid clear this week.", FormatAccomplishments(nil))
}

func TestNewDeltaResponse(t *testing.T) {
	resp := NewDeltaResponse([]models.DeltaEntry{
		{ID: "a", Classification: models.RecordedByProofService},
		{ID: "b", Classification: models.OnlyGameAPI},
		{ID: "c", Classification: models.OnlyGameAPI},
	})

	assert.Equal(t, 3, resp.Length)
	assert.Equal(t, 2, resp.Pending)

	empty := NewDeltaResponse(nil)
	assert.NotNil(t, empty.Entries)
	assert.Zero(t, empty.Length)
}
