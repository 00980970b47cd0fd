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

import "strings"

// Corpus is the full set of legal solution words.
//
// It preserves insertion order (filter results are reported in corpus order)
// while deduplicating, so a word list with duplicates filters identically to
// the same list without them. A Corpus is immutable after construction.
type Corpus struct {
	words []string
	index map[string]bool
}

// NewCorpus builds a Corpus from raw words.
//
// Words are lowercased; entries with the wrong length or non-letter
// characters are dropped; duplicates keep their first position.
func NewCorpus(raw []string) *Corpus {
	c := &Corpus{
		words: make([]string, 0, len(raw)),
		index: make(map[string]bool, len(raw)),
	}
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if !isLowerWord(w) || c.index[w] {
			continue
		}
		c.words = append(c.words, w)
		c.index[w] = true
	}
	return c
}

// Words returns the corpus in order. The caller must not modify it.
func (c *Corpus) Words() []string {
	return c.words
}

// Contains reports whether the word (already lowercase) is in the corpus.
func (c *Corpus) Contains(word string) bool {
	return c.index[word]
}

// Len returns the number of distinct words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// isLowerWord reports whether w is exactly WordLength lowercase letters.
func isLowerWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
