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

// Filter applies a ConstraintSet to a corpus and returns the consistent
// words partitioned by letter uniqueness.
//
// The match predicate is per-position character classes plus a presence
// check: a word matches iff every position's letter is allowed there AND the
// word contains every yellow-flagged letter at least once somewhere. Classes
// and the presence set are precomputed once, so the scan is a single
// O(len(corpus) * WordLength) pass in corpus order.
//
// Filter has no side effects; cs and corpus are read-only.
func Filter(cs ConstraintSet, corpus *Corpus) FilteredResult {
	classes := positionClasses(cs)

	required := make([]byte, 0, len(cs.ExcludedPositions))
	for ch := range cs.ExcludedPositions {
		required = append(required, ch)
	}

	matches := make([]string, 0)
	for _, word := range corpus.Words() {
		if matchesClasses(word, &classes) && containsAll(word, required) {
			matches = append(matches, word)
		}
	}

	// Partition after matching, preserving corpus order in each bucket.
	var result FilteredResult
	for _, word := range matches {
		if hasRepeatedLetters(word) {
			result.Repeated = append(result.Repeated, word)
		} else {
			result.Unique = append(result.Unique, word)
		}
	}
	return result
}

// positionClasses builds the allowed-letter class for every position.
//
// A fixed position allows exactly its green letter. An unconstrained
// position allows any letter that is neither globally excluded nor
// yellow-excluded at that specific position.
func positionClasses(cs ConstraintSet) [WordLength][26]bool {
	var classes [WordLength][26]bool
	for i := 0; i < WordLength; i++ {
		pos := i + 1
		if fixed, ok := cs.Fixed[pos]; ok {
			classes[i][fixed-'a'] = true
			continue
		}
		for ch := byte('a'); ch <= 'z'; ch++ {
			if cs.ExcludedLetters[ch] {
				continue
			}
			if cs.ExcludedPositions[ch][pos] {
				continue
			}
			classes[i][ch-'a'] = true
		}
	}
	return classes
}

func matchesClasses(word string, classes *[WordLength][26]bool) bool {
	for i := 0; i < WordLength; i++ {
		if !classes[i][word[i]-'a'] {
			return false
		}
	}
	return true
}

// containsAll reports whether word contains every required letter at least
// once, regardless of position.
func containsAll(word string, required []byte) bool {
	for _, ch := range required {
		found := false
		for i := 0; i < len(word); i++ {
			if word[i] == ch {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
