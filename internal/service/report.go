// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kp-refresher/models"
)

// formatNextIn renders "Next retry in 5 minutes." Durations under a minute
// are shown in seconds; partial units round up so a pending task never
// reads as "0 minutes".
func formatNextIn(noun string, d time.Duration) string {
	if d < time.Minute {
		secs := int((d + time.Second - 1) / time.Second)
		return fmt.Sprintf("Next %s in %d %s.", noun, secs, plural(secs, "second"))
	}

	mins := int((d + time.Minute - 1) / time.Minute)
	return fmt.Sprintf("Next %s in %d %s.", noun, mins, plural(mins, "minute"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatAccomplishments renders one line per achieved record:
//
//	Vale Guardian [recorded]
//	Gorseval [not recorded]
func FormatAccomplishments(delta []models.DeltaEntry) string {
	if len(delta) == 0 {
		return "No raid clear this week."
	}

	var b strings.Builder
	for _, e := range delta {
		status := "not recorded"
		if e.Classification == models.RecordedByProofService {
			status = "recorded"
		}
		fmt.Fprintf(&b, "%s [%s]\n", e.Name, status)
	}
	return b.String()
}

// NewDeltaResponse wraps delta with its totals for the control API.
func NewDeltaResponse(delta []models.DeltaEntry) models.DeltaResponse {
	if delta == nil {
		delta = []models.DeltaEntry{}
	}
	return models.DeltaResponse{
		Entries: delta,
		Length:  len(delta),
		Pending: len(OnlyGameAPI(delta)),
	}
}
