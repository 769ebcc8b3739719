// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccomplishmentRecord is a single raid encounter as reported by the Guild
// Wars 2 API. Records are immutable once fetched.
type AccomplishmentRecord struct {
	// ID is the GW2 raid event identifier (e.g. "vale_guardian", "sabetha").
	ID string `json:"id"`

	// Name is the display name of the encounter (e.g. "Vale Guardian").
	Name string `json:"name"`

	// Wing is the wing identifier the encounter belongs to (e.g. "spirit_vale").
	Wing string `json:"wing,omitempty"`

	// Achieved reports whether the encounter was cleared during the current
	// weekly reset.
	Achieved bool `json:"achieved"`

	// AchievedAt is the clear time when the game API provides one.
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
}

// RecordSet is an ordered, id-indexed collection of accomplishment records.
// The iteration order is the natural order of the game API
// (raid → wing → encounter) and is the order used for presentation.
type RecordSet struct {
	records []AccomplishmentRecord
	index   map[string]int
}

// NewRecordSet builds a RecordSet from records, preserving their order.
// When an id appears more than once only the first occurrence is kept.
func NewRecordSet(records ...AccomplishmentRecord) RecordSet {
	set := RecordSet{
		records: make([]AccomplishmentRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if _, exists := set.index[r.ID]; exists {
			continue
		}
		set.index[r.ID] = len(set.records)
		set.records = append(set.records, r)
	}
	return set
}

// Len returns the number of records in the set.
func (s RecordSet) Len() int {
	return len(s.records)
}

// Get returns the record with the given id.
func (s RecordSet) Get(id string) (AccomplishmentRecord, bool) {
	i, ok := s.index[id]
	if !ok {
		return AccomplishmentRecord{}, false
	}
	return s.records[i], true
}

// Records returns a copy of the records in their stable order.
func (s RecordSet) Records() []AccomplishmentRecord {
	out := make([]AccomplishmentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Achieved returns the achieved records in their stable order.
func (s RecordSet) Achieved() []AccomplishmentRecord {
	out := make([]AccomplishmentRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.Achieved {
			out = append(out, r)
		}
	}
	return out
}

// ProofRecord is the proof service's view of a single encounter. IDs share
// the id space of [AccomplishmentRecord].
type ProofRecord struct {
	ID       string `json:"id"`
	Recorded bool   `json:"recorded"`
}

// ProofRecordSet maps an encounter id to its proof record.
type ProofRecordSet map[string]ProofRecord

// IsRecorded reports whether id is present and marked as recorded.
func (p ProofRecordSet) IsRecorded(id string) bool {
	r, ok := p[id]
	return ok && r.Recorded
}

// Classification tells where a cleared encounter is currently visible.
type Classification int

const (
	// Unknown is the zero value and is never produced by the diff.
	Unknown Classification = iota
	// OnlyGameAPI means the clear is visible to the game API but is not yet
	// recorded by the proof service; a refresh can pick it up.
	OnlyGameAPI
	// RecordedByProofService means the proof service already holds the clear.
	RecordedByProofService
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case OnlyGameAPI:
		return "only_game_api"
	case RecordedByProofService:
		return "recorded"
	default:
		return "unknown"
	}
}

// MarshalText lets classifications travel as strings in JSON.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(b []byte) error {
	switch string(b) {
	case "only_game_api":
		*c = OnlyGameAPI
	case "recorded":
		*c = RecordedByProofService
	default:
		*c = Unknown
	}
	return nil
}

// DeltaEntry is one line of a comparison result.
type DeltaEntry struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
}

// LinkedAccount is a secondary KillProof.me identity linked to the player's
// primary identity.
type LinkedAccount struct {
	ID string `json:"kpid"`
}
