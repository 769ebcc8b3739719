// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/kp-refresher/models"
)

// diffService is the concrete implementation of DiffService. It is a pure
// in-memory comparison and needs no dependencies.
type diffService struct{}

// NewDiffService constructs a DiffService ready for use.
func NewDiffService() DiffService {
	return &diffService{}
}

// ComputeDelta implements DiffService.
//
// Records that are not achieved are skipped. A record is
// RecordedByProofService only when proof holds the same id marked as
// recorded; a missing id or an unrecorded entry both yield OnlyGameAPI.
func (d *diffService) ComputeDelta(records models.RecordSet, proof models.ProofRecordSet) []models.DeltaEntry {
	achieved := records.Achieved()
	delta := make([]models.DeltaEntry, 0, len(achieved))

	for _, r := range achieved {
		classification := models.OnlyGameAPI
		if proof.IsRecorded(r.ID) {
			classification = models.RecordedByProofService
		}
		delta = append(delta, models.DeltaEntry{
			ID:             r.ID,
			Name:           r.Name,
			Classification: classification,
		})
	}

	return delta
}

// OnlyGameAPI keeps the entries a KillProof.me refresh can still pick up.
func OnlyGameAPI(delta []models.DeltaEntry) []models.DeltaEntry {
	out := make([]models.DeltaEntry, 0, len(delta))
	for _, e := range delta {
		if e.Classification == models.OnlyGameAPI {
			out = append(out, e)
		}
	}
	return out
}

// HasFinalBoss reports whether delta contains the last boss of a wing.
func HasFinalBoss(delta []models.DeltaEntry) bool {
	for _, e := range delta {
		if models.IsFinalBoss(e.ID) {
			return true
		}
	}
	return false
}
