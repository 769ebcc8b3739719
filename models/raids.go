// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// finalBosses holds the last encounter of every raid wing.
var finalBosses = map[string]struct{}{
	"sabetha":            {},
	"matthias":           {},
	"xera":               {},
	"deimos":             {},
	"dhuum":              {},
	"qadim":              {},
	"qadim_the_peerless": {},
	"ura":                {},
}

// IsFinalBoss reports whether id is the last encounter of a raid wing.
func IsFinalBoss(id string) bool {
	_, ok := finalBosses[id]
	return ok
}

// DefaultTrackedMapIDs lists the raid map ids whose exit triggers a
// map-change refresh when no explicit list is configured.
var DefaultTrackedMapIDs = []int{
	1062, // Spirit Vale
	1149, // Salvation Pass
	1156, // Stronghold of the Faithful
	1188, // Bastion of the Penitent
	1264, // Hall of Chains
	1303, // Mythwright Gambit
	1323, // The Key of Ahdashim
	1564, // Mount Balrior
}
