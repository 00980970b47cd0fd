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

import "sort"

// missingLetterPenalty is the score charged when a letter does not appear in
// a position's frequency list at all. Large enough to sink the word below
// any combination of real ranks.
const missingLetterPenalty = 1000

// Suggestion is a candidate word with its positional-frequency score.
// Lower scores are better.
type Suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// RankSuggestions orders candidate words for display.
//
// Words with the highest vowel count are kept (vowel-rich guesses reveal
// more early), then scored by summing each letter's 1-indexed frequency rank
// at the positions not yet fixed. All-fixed constraint sets score every word
// zero. Ties break alphabetically, so the ranking is deterministic.
func RankSuggestions(cs ConstraintSet, words []string, freq FrequencyTable) []Suggestion {
	if len(words) == 0 {
		return nil
	}

	pool := mostVowels(words)

	unfixed := make([]int, 0, WordLength)
	for pos := 1; pos <= WordLength; pos++ {
		if _, ok := cs.Fixed[pos]; !ok {
			unfixed = append(unfixed, pos)
		}
	}

	out := make([]Suggestion, 0, len(pool))
	for _, word := range pool {
		score := 0
		for _, pos := range unfixed {
			if rank, ok := freq.RankOf(pos, word[pos-1]); ok {
				score += rank
			} else {
				score += missingLetterPenalty
			}
		}
		out = append(out, Suggestion{Word: word, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// mostVowels returns the words sharing the maximum vowel count.
func mostVowels(words []string) []string {
	best := -1
	var out []string
	for _, word := range words {
		n := 0
		for i := 0; i < len(word); i++ {
			switch word[i] {
			case 'a', 'e', 'i', 'o', 'u':
				n++
			}
		}
		if n > best {
			best = n
			out = out[:0]
		}
		if n == best {
			out = append(out, word)
		}
	}
	return out
}
