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

import (
	"reflect"
	"testing"
)

func testCorpus() *Corpus {
	return NewCorpus([]string{"saint", "slant", "plant", "chant", "grant"})
}

func TestFilter_YellowAndGreyScenario(t *testing.T) {
	// Guess SAINT, A is yellow at position 2, E and R are grey.
	cs, err := ApplyFeedback(NewConstraintSet(), "saint", ".....", ".a...", []string{"e", "r"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}

	got := Filter(cs, testCorpus())

	// saint has a at position 2 (excluded); grant contains r (excluded);
	// the rest contain a elsewhere and no grey letters. Corpus order holds.
	wantUnique := []string{"slant", "plant", "chant"}
	if !reflect.DeepEqual(got.Unique, wantUnique) {
		t.Errorf("unique bucket = %v, want %v", got.Unique, wantUnique)
	}
	if len(got.Repeated) != 0 {
		t.Errorf("repeated bucket = %v, want empty", got.Repeated)
	}
	if got.Count() != 3 {
		t.Errorf("count = %d, want 3", got.Count())
	}
}

func TestFilter_FullyFixedWord(t *testing.T) {
	cs, err := ApplyFeedback(NewConstraintSet(), "plant", "plant", ".....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}

	got := Filter(cs, testCorpus())
	if !reflect.DeepEqual(got.Unique, []string{"plant"}) {
		t.Errorf("unique bucket = %v, want [plant]", got.Unique)
	}
	if len(got.Repeated) != 0 {
		t.Errorf("repeated bucket = %v, want empty", got.Repeated)
	}
}

func TestFilter_YellowExistenceRule(t *testing.T) {
	// Yellow 'a' at position 1: a word with no 'a' anywhere must be
	// excluded even though its per-position classes all pass.
	cs, err := ApplyFeedback(NewConstraintSet(), "about", ".....", "a....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}

	corpus := NewCorpus([]string{"shine", "slant"})
	got := Filter(cs, corpus)
	if !reflect.DeepEqual(got.Unique, []string{"slant"}) {
		t.Errorf("unique bucket = %v, want [slant]", got.Unique)
	}
}

func TestFilter_PartitionByRepeatedLetters(t *testing.T) {
	corpus := NewCorpus([]string{"sassy", "slant", "eerie", "chant"})
	got := Filter(NewConstraintSet(), corpus)

	if !reflect.DeepEqual(got.Unique, []string{"slant", "chant"}) {
		t.Errorf("unique = %v", got.Unique)
	}
	if !reflect.DeepEqual(got.Repeated, []string{"sassy", "eerie"}) {
		t.Errorf("repeated = %v", got.Repeated)
	}

	// Buckets cover all matches exactly and are disjoint.
	seen := make(map[string]int)
	for _, w := range got.All() {
		seen[w]++
	}
	if len(seen) != corpus.Len() {
		t.Errorf("partition incomplete: %v", seen)
	}
	for w, n := range seen {
		if n != 1 {
			t.Errorf("word %q appears in both buckets", w)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	cs, err := ApplyFeedback(NewConstraintSet(), "saint", "s....", ".a...", []string{"e"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	corpus := testCorpus()

	first := Filter(cs, corpus)
	second := Filter(cs, corpus)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("filtering is not idempotent: %v vs %v", first, second)
	}
}

func TestFilter_Monotonic(t *testing.T) {
	corpus := testCorpus()

	cs1, err := ApplyFeedback(NewConstraintSet(), "saint", ".....", ".a...", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	before := Filter(cs1, corpus)

	// Adding feedback can only narrow the candidate set.
	cs2, err := ApplyFeedback(cs1, "chant", "c....", ".....", []string{"g"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	after := Filter(cs2, corpus)

	if after.Count() > before.Count() {
		t.Fatalf("candidate set grew: %d -> %d", before.Count(), after.Count())
	}
	beforeSet := make(map[string]bool)
	for _, w := range before.All() {
		beforeSet[w] = true
	}
	for _, w := range after.All() {
		if !beforeSet[w] {
			t.Errorf("word %q appeared after narrowing", w)
		}
	}
}

func TestFilter_DuplicateCorpusEntriesDoNotChangeResults(t *testing.T) {
	plain := NewCorpus([]string{"slant", "plant"})
	doubled := NewCorpus([]string{"slant", "plant", "slant", "plant"})

	cs := NewConstraintSet()
	if !reflect.DeepEqual(Filter(cs, plain), Filter(cs, doubled)) {
		t.Errorf("duplicates changed filter output")
	}
}

func TestFilter_GreyWithGreenDuplicate(t *testing.T) {
	// 's' green at position 1 and also reported grey: words containing 's'
	// at the fixed spot must survive.
	cs, err := ApplyFeedback(NewConstraintSet(), "slots", "s....", ".....", []string{"s"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}

	corpus := NewCorpus([]string{"slant", "saint"})
	got := Filter(cs, corpus)
	if got.Count() != 2 {
		t.Errorf("grey-with-duplicate excluded fixed letter words: %v", got)
	}
}
