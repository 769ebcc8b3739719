// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/kp-refresher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, achieved bool) models.AccomplishmentRecord {
	return models.AccomplishmentRecord{ID: id, Name: id, Achieved: achieved}
}

func TestComputeDelta_RecordedAndOnlyGameAPI(t *testing.T) {
	records := models.NewRecordSet(rec("A", true), rec("B", true))
	proof := models.ProofRecordSet{"A": {ID: "A", Recorded: true}}

	delta := NewDiffService().ComputeDelta(records, proof)

	assert.Equal(t, []models.DeltaEntry{
		{ID: "A", Name: "A", Classification: models.RecordedByProofService},
		{ID: "B", Name: "B", Classification: models.OnlyGameAPI},
	}, delta)
	assert.Equal(t, []models.DeltaEntry{
		{ID: "B", Name: "B", Classification: models.OnlyGameAPI},
	}, OnlyGameAPI(delta))
}

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name    string
		records models.RecordSet
		proof   models.ProofRecordSet
		want    []models.DeltaEntry
	}{
		{
			name:    "empty inputs",
			records: models.NewRecordSet(),
			proof:   nil,
			want:    []models.DeltaEntry{},
		},
		{
			name:    "non achieved records are excluded",
			records: models.NewRecordSet(rec("A", false), rec("B", true), rec("C", false)),
			proof:   models.ProofRecordSet{"A": {ID: "A", Recorded: true}},
			want:    []models.DeltaEntry{{ID: "B", Name: "B", Classification: models.OnlyGameAPI}},
		},
		{
			name:    "proof entry not recorded counts as only game api",
			records: models.NewRecordSet(rec("A", true)),
			proof:   models.ProofRecordSet{"A": {ID: "A", Recorded: false}},
			want:    []models.DeltaEntry{{ID: "A", Name: "A", Classification: models.OnlyGameAPI}},
		},
		{
			name:    "proof only ids are ignored",
			records: models.NewRecordSet(rec("A", true)),
			proof:   models.ProofRecordSet{"Z": {ID: "Z", Recorded: true}},
			want:    []models.DeltaEntry{{ID: "A", Name: "A", Classification: models.OnlyGameAPI}},
		},
		{
			name:    "game order is kept",
			records: models.NewRecordSet(rec("C", true), rec("A", true), rec("B", true)),
			proof:   models.ProofRecordSet{"A": {ID: "A", Recorded: true}},
			want: []models.DeltaEntry{
				{ID: "C", Name: "C", Classification: models.OnlyGameAPI},
				{ID: "A", Name: "A", Classification: models.RecordedByProofService},
				{ID: "B", Name: "B", Classification: models.OnlyGameAPI},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDiffService().ComputeDelta(tt.records, tt.proof)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDelta_DoesNotMutateInputs(t *testing.T) {
	records := models.NewRecordSet(rec("A", true), rec("B", false))
	proof := models.ProofRecordSet{"A": {ID: "A", Recorded: true}}
	recordsBefore := records.Records()

	NewDiffService().ComputeDelta(records, proof)

	assert.Equal(t, recordsBefore, records.Records())
	assert.Equal(t, models.ProofRecordSet{"A": {ID: "A", Recorded: true}}, proof)
}

// TestComputeDelta_Properties checks on random inputs that the delta never
// outgrows the achieved records, only names known ids, keeps game order and
// is deterministic.
func TestComputeDelta_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	differ := NewDiffService()

	for i := 0; i < 200; i++ {
		n := rng.IntN(20)
		records := make([]models.AccomplishmentRecord, 0, n)
		proof := make(models.ProofRecordSet)
		for j := 0; j < n; j++ {
			id := fmt.Sprintf("boss_%d", rng.IntN(25))
			records = append(records, rec(id, rng.IntN(2) == 0))
			if rng.IntN(3) == 0 {
				proof[id] = models.ProofRecord{ID: id, Recorded: rng.IntN(2) == 0}
			}
		}
		set := models.NewRecordSet(records...)

		delta := differ.ComputeDelta(set, proof)

		require.LessOrEqual(t, len(delta), len(set.Achieved()))
		require.Equal(t, delta, differ.ComputeDelta(set, proof))

		achieved := set.Achieved()
		k := 0
		for _, e := range delta {
			r, ok := set.Get(e.ID)
			require.True(t, ok, "unknown id %q", e.ID)
			require.True(t, r.Achieved)

			for k < len(achieved) && achieved[k].ID != e.ID {
				k++
			}
			require.Less(t, k, len(achieved), "entry %q out of game order", e.ID)
		}
	}
}

func TestHasFinalBoss(t *testing.T) {
	assert.False(t, HasFinalBoss(nil))
	assert.False(t, HasFinalBoss([]models.DeltaEntry{{ID: "gorseval"}, {ID: "vale_guardian"}}))
	assert.True(t, HasFinalBoss([]models.DeltaEntry{{ID: "gorseval"}, {ID: "sabetha"}}))
}
