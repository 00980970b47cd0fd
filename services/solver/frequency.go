// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package solver

// FrequencyTable holds, for each position, letters ordered by descending
// observed frequency. The ordering is the expansion order; the observed
// counts themselves are not kept.
//
// A FrequencyTable is immutable after construction. Positions with no data
// simply have an empty letter list.
type FrequencyTable struct {
	// ranked[pos] is the rank-ordered letter list for 1-indexed pos.
	ranked [WordLength + 1][]byte
}

// NewFrequencyTable builds a table from per-position rank-ordered letter
// strings. Keys outside 1..WordLength and non-lowercase-letter characters
// are ignored; duplicate letters within a position keep their first rank.
func NewFrequencyTable(perPosition map[int]string) FrequencyTable {
	var t FrequencyTable
	for pos, letters := range perPosition {
		if pos < 1 || pos > WordLength {
			continue
		}
		var seen [26]bool
		for i := 0; i < len(letters); i++ {
			ch := letters[i]
			if ch < 'a' || ch > 'z' || seen[ch-'a'] {
				continue
			}
			seen[ch-'a'] = true
			t.ranked[pos] = append(t.ranked[pos], ch)
		}
	}
	return t
}

// Letters returns the rank-ordered letters for a 1-indexed position.
// The caller must not modify the returned slice.
func (t FrequencyTable) Letters(pos int) []byte {
	if pos < 1 || pos > WordLength {
		return nil
	}
	return t.ranked[pos]
}

// RankOf returns the 1-indexed rank of a letter at a position, or false if
// the letter does not appear in that position's list.
func (t FrequencyTable) RankOf(pos int, ch byte) (int, bool) {
	for i, c := range t.Letters(pos) {
		if c == ch {
			return i + 1, true
		}
	}
	return 0, false
}
