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
	"errors"
	"testing"
)

func TestExpand_FrequencyOrderRecovery(t *testing.T) {
	// PLAN is fixed at positions 1-4, position 5 free. The frequency list
	// for position 5 is e,y,a,t,r with e grey-excluded, so the pool grows
	// y -> ya -> yat; "plant" is the first corpus hit.
	cs, err := ApplyFeedback(NewConstraintSet(), "plane", "plan.", ".....", []string{"e"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}

	corpus := NewCorpus([]string{"plant", "plait"})
	freq := NewFrequencyTable(map[int]string{5: "eyatr"})

	got, err := Expand(cs, corpus, freq)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != "plant" {
		t.Errorf("expanded word = %q, want plant", got)
	}
}

func TestExpand_Deterministic(t *testing.T) {
	cs, err := ApplyFeedback(NewConstraintSet(), "slant", "s....", ".....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	corpus := NewCorpus([]string{"shine", "stone", "spine"})
	freq := NewFrequencyTable(map[int]string{
		1: "sctp", 2: "htaoi", 3: "aiour", 4: "enats", 5: "eytrs",
	})

	first, err := Expand(cs, corpus, freq)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Expand(cs, corpus, freq)
		if err != nil || again != first {
			t.Fatalf("expansion not deterministic: %q vs %q (err %v)", first, again, err)
		}
	}
}

func TestExpand_SmallestDepthWins(t *testing.T) {
	// Both words fit the constraints, but "stone" only needs depth 1 at
	// every free position while "shine" needs depth 2, so depth order
	// beats corpus order.
	cs, err := ApplyFeedback(NewConstraintSet(), "sumps", "s....", ".....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	corpus := NewCorpus([]string{"shine", "stone"})
	freq := NewFrequencyTable(map[int]string{
		1: "s", 2: "th", 3: "oi", 4: "nm", 5: "e",
	})

	got, err := Expand(cs, corpus, freq)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != "stone" {
		t.Errorf("expanded word = %q, want stone (found at smaller depth)", got)
	}
}

func TestExpand_NeverRelaxesConstraints(t *testing.T) {
	// 't' is excluded; the only corpus word needs a 't' in a free
	// position, so expansion must fail rather than bend the exclusion.
	cs, err := ApplyFeedback(NewConstraintSet(), "plane", "plan.", ".....", []string{"t", "e"})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	corpus := NewCorpus([]string{"plant"})
	freq := NewFrequencyTable(map[int]string{5: "teyar"})

	_, err = Expand(cs, corpus, freq)
	if !errors.Is(err, ErrExpansionExhausted) {
		t.Fatalf("want ErrExpansionExhausted, got %v", err)
	}
}

func TestExpand_ExhaustedTable(t *testing.T) {
	cs, err := ApplyFeedback(NewConstraintSet(), "plane", "plan.", ".....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	// Frequency list only offers letters that form no corpus word.
	corpus := NewCorpus([]string{"slant"})
	freq := NewFrequencyTable(map[int]string{5: "xz"})

	_, err = Expand(cs, corpus, freq)
	if !errors.Is(err, ErrExpansionExhausted) {
		t.Fatalf("want ErrExpansionExhausted, got %v", err)
	}
}

func TestExpand_AllPositionsFixed(t *testing.T) {
	cs, err := ApplyFeedback(NewConstraintSet(), "plant", "plant", ".....", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	_, err = Expand(cs, NewCorpus([]string{"slant"}), NewFrequencyTable(nil))
	if !errors.Is(err, ErrExpansionExhausted) {
		t.Fatalf("want ErrExpansionExhausted, got %v", err)
	}
}

func TestExpand_RespectsYellowPositionExclusions(t *testing.T) {
	// 'a' is yellow at position 5: a word with 'a' there cannot be the
	// recovery candidate even if 'a' ranks first in the frequency list.
	cs, err := ApplyFeedback(NewConstraintSet(), "plana", "plan.", "....a", nil)
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	corpus := NewCorpus([]string{"plana", "plant"})
	freq := NewFrequencyTable(map[int]string{5: "at"})

	got, err := Expand(cs, corpus, freq)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != "plant" {
		t.Errorf("expanded word = %q, want plant", got)
	}
}
