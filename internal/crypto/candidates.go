// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "slices"

// DefaultMessage is the fixed plaintext every blob carries.
const DefaultMessage = "Don't be an assole"

var defaultCandidates = []string{
	"he/him",
	"she/her",
	"they/them",
	"xe/xem",
	"ze/zir",
	"fae/faer",
	"any/all",
}

// DefaultCandidates returns a copy of the curated candidate list tried when
// the recipient supplies no phrase. None of its entries collide under the
// weak deriver.
func DefaultCandidates() []string {
	out := make([]string, len(defaultCandidates))
	copy(out, defaultCandidates)
	return out
}

// Collision is a pair of distinct candidates that derive the same key.
type Collision struct {
	First  string
	Second string
	Key    DerivedKey
}

// FindCollisions reports every pair (i < j) of candidates whose derived keys
// are equal. Repeated identical phrases are not reported.
func FindCollisions(deriver KeyDeriver, candidates []string) []Collision {
	seen := make(map[DerivedKey][]string, len(candidates))
	var collisions []Collision

	for _, c := range candidates {
		key := deriver.Derive(c)
		if slices.Contains(seen[key], c) {
			continue
		}
		for _, prev := range seen[key] {
			collisions = append(collisions, Collision{First: prev, Second: c, Key: key})
		}
		seen[key] = append(seen[key], c)
	}

	return collisions
}
