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

import "fmt"

// Expand recovers a candidate when Filter returned nothing.
//
// It widens the letters tried at unconstrained positions using the frequency
// table's rank order, without ever relaxing the accumulated constraints:
// fixed positions stay fixed, and globally or positionally excluded letters
// are never tried.
//
// The widening is round-robin by depth: at depth k, every unconstrained
// position's letter pool is the first k entries of its frequency list
// (pre-filtered against exclusions), and the corpus is scanned in order for
// a word whose fixed positions match and whose free letters all fall inside
// the current pools. The first hit at the smallest depth wins, which makes
// the result deterministic, and growing k eventually enumerates the full
// cross product bounded by the table length.
//
// Expand returns the single recovered word, or ErrExpansionExhausted when
// the frequency lists run out without a corpus hit.
func Expand(cs ConstraintSet, corpus *Corpus, freq FrequencyTable) (string, error) {
	freePositions := make([]int, 0, WordLength)
	for pos := 1; pos <= WordLength; pos++ {
		if _, ok := cs.Fixed[pos]; !ok {
			freePositions = append(freePositions, pos)
		}
	}
	if len(freePositions) == 0 {
		return "", fmt.Errorf("%w: all positions fixed", ErrExpansionExhausted)
	}

	// Pool per free position: frequency order minus excluded letters.
	pools := make(map[int][]byte, len(freePositions))
	maxDepth := 0
	for _, pos := range freePositions {
		pool := make([]byte, 0, len(freq.Letters(pos)))
		for _, ch := range freq.Letters(pos) {
			if cs.ExcludedLetters[ch] || cs.ExcludedPositions[ch][pos] {
				continue
			}
			pool = append(pool, ch)
		}
		if len(pool) == 0 {
			return "", fmt.Errorf("%w: no letters left for position %d", ErrExpansionExhausted, pos)
		}
		pools[pos] = pool
		if len(pool) > maxDepth {
			maxDepth = len(pool)
		}
	}

	for depth := 1; depth <= maxDepth; depth++ {
		for _, word := range corpus.Words() {
			if expandedMatch(word, cs, pools, depth) {
				return word, nil
			}
		}
	}
	return "", ErrExpansionExhausted
}

// expandedMatch reports whether word fits the fixed positions and draws
// every free-position letter from the first `depth` entries of that
// position's pool.
func expandedMatch(word string, cs ConstraintSet, pools map[int][]byte, depth int) bool {
	for i := 0; i < WordLength; i++ {
		pos := i + 1
		if fixed, ok := cs.Fixed[pos]; ok {
			if word[i] != fixed {
				return false
			}
			continue
		}
		pool := pools[pos]
		if depth < len(pool) {
			pool = pool[:depth]
		}
		inPool := false
		for _, ch := range pool {
			if ch == word[i] {
				inPool = true
				break
			}
		}
		if !inPool {
			return false
		}
	}
	return true
}
