// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package solver implements the constraint-based word filtering engine for
// the five-letter puzzle helper.
//
// The engine accumulates green/yellow/grey feedback into a ConstraintSet,
// filters a word corpus against it, recovers via frequency-driven expansion
// when the filter comes up empty, and recommends a next guess.
//
// All letters are stored lowercase. Positions are 1-indexed, matching the
// feedback token format users see.
package solver

import "strings"

// WordLength is the fixed puzzle word length.
const WordLength = 5

// ConstraintSet is the accumulated knowledge for a session.
//
// It is treated as an immutable value: operations that add feedback return a
// new ConstraintSet and leave the receiver untouched. A zero-value
// ConstraintSet (or NewConstraintSet()) means no feedback yet.
type ConstraintSet struct {
	// Fixed maps a 1-indexed position to its confirmed (green) letter.
	Fixed map[int]byte

	// ExcludedPositions maps a letter known present (yellow) to the set of
	// positions where it is known NOT to be.
	ExcludedPositions map[byte]map[int]bool

	// ExcludedLetters holds letters known fully absent from the solution.
	ExcludedLetters map[byte]bool
}

// NewConstraintSet returns an empty ConstraintSet.
func NewConstraintSet() ConstraintSet {
	return ConstraintSet{
		Fixed:             make(map[int]byte),
		ExcludedPositions: make(map[byte]map[int]bool),
		ExcludedLetters:   make(map[byte]bool),
	}
}

// Clone returns a deep copy. The copy can be mutated freely without
// affecting the receiver.
func (cs ConstraintSet) Clone() ConstraintSet {
	out := NewConstraintSet()
	for pos, ch := range cs.Fixed {
		out.Fixed[pos] = ch
	}
	for ch, positions := range cs.ExcludedPositions {
		set := make(map[int]bool, len(positions))
		for pos := range positions {
			set[pos] = true
		}
		out.ExcludedPositions[ch] = set
	}
	for ch := range cs.ExcludedLetters {
		out.ExcludedLetters[ch] = true
	}
	return out
}

// Empty reports whether no feedback has been recorded yet.
func (cs ConstraintSet) Empty() bool {
	return len(cs.Fixed) == 0 && len(cs.ExcludedPositions) == 0 && len(cs.ExcludedLetters) == 0
}

// Solved reports whether every position has a confirmed letter.
func (cs ConstraintSet) Solved() bool {
	return len(cs.Fixed) == WordLength
}

// FixedWord returns the solved word, or "" if not all positions are fixed.
func (cs ConstraintSet) FixedWord() string {
	if !cs.Solved() {
		return ""
	}
	var b strings.Builder
	for pos := 1; pos <= WordLength; pos++ {
		b.WriteByte(cs.Fixed[pos])
	}
	return b.String()
}

// knownPresent reports whether the letter is confirmed in the solution,
// either fixed at some position or flagged yellow somewhere.
func (cs ConstraintSet) knownPresent(ch byte) bool {
	for _, fixed := range cs.Fixed {
		if fixed == ch {
			return true
		}
	}
	return len(cs.ExcludedPositions[ch]) > 0
}

// FilteredResult partitions the words consistent with a ConstraintSet into
// two disjoint buckets. Order within each bucket is corpus order.
type FilteredResult struct {
	// Unique holds matching words whose letters are all distinct.
	Unique []string

	// Repeated holds matching words with at least one repeated letter.
	Repeated []string
}

// Count returns the combined number of candidates in both buckets.
func (r FilteredResult) Count() int {
	return len(r.Unique) + len(r.Repeated)
}

// IsEmpty reports whether both buckets are empty.
func (r FilteredResult) IsEmpty() bool {
	return len(r.Unique) == 0 && len(r.Repeated) == 0
}

// All returns both buckets concatenated, unique bucket first.
func (r FilteredResult) All() []string {
	out := make([]string, 0, r.Count())
	out = append(out, r.Unique...)
	out = append(out, r.Repeated...)
	return out
}

// hasRepeatedLetters reports whether any letter occurs more than once.
func hasRepeatedLetters(word string) bool {
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if seen[idx] {
			return true
		}
		seen[idx] = true
	}
	return false
}
