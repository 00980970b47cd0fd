// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"strings"
	"testing"

	"github.com/AleutianAI/wordlehelper/services/solver"
)

func TestRenderBucket(t *testing.T) {
	out := renderBucket("Words without repeated letters", []string{"slant", "plant", "chant"})
	if !strings.Contains(out, "(3)") {
		t.Errorf("bucket header missing count: %q", out)
	}
	for _, w := range []string{"slant", "plant", "chant"} {
		if !strings.Contains(out, w) {
			t.Errorf("bucket output missing %q", w)
		}
	}
}

func TestRenderBucket_Empty(t *testing.T) {
	out := renderBucket("Words with repeated letters", nil)
	if !strings.Contains(out, "(0)") || !strings.Contains(out, "none") {
		t.Errorf("empty bucket output = %q", out)
	}
}

func TestRenderBucket_WrapsLongLists(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = "aaaaa"
	}
	out := renderBucket("many", words)
	// Header plus three wrapped lines of eight, eight, and four words.
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("expected 4 lines, got %d in %q", got, out)
	}
}

func TestRenderResult_Suggestion(t *testing.T) {
	result := solver.RoundResult{
		Candidates: solver.FilteredResult{Unique: []string{"slant", "plant"}},
		Suggestion: "slant",
	}
	out := renderResult(result)
	if !strings.Contains(out, "Next guess:") || !strings.Contains(out, "slant") {
		t.Errorf("result output missing suggestion: %q", out)
	}
}

func TestRenderResult_NoSuggestion(t *testing.T) {
	out := renderResult(solver.RoundResult{})
	if !strings.Contains(out, "No suggestion available") {
		t.Errorf("result output missing exhaustion notice: %q", out)
	}
}

func TestRenderResult_ExpandedNotice(t *testing.T) {
	result := solver.RoundResult{
		Candidates: solver.FilteredResult{Unique: []string{"plant"}},
		Suggestion: "plant",
		Expanded:   true,
	}
	out := renderResult(result)
	if !strings.Contains(out, "expansion") {
		t.Errorf("expanded result output missing notice: %q", out)
	}
}

func TestRenderConstraints(t *testing.T) {
	cs := solver.NewConstraintSet()
	cs.Fixed[1] = 'p'
	cs.Fixed[5] = 't'
	cs.ExcludedPositions['a'] = map[int]bool{2: true}
	cs.ExcludedLetters['e'] = true
	cs.ExcludedLetters['r'] = true

	out := renderConstraints(cs)
	if !strings.Contains(out, "P") || !strings.Contains(out, "T") {
		t.Errorf("constraints output missing fixed letters: %q", out)
	}
	if !strings.Contains(out, "In the word: a") {
		t.Errorf("constraints output missing present letters: %q", out)
	}
	if !strings.Contains(out, "e r") {
		t.Errorf("constraints output missing absent letters: %q", out)
	}
}

func TestValidateSuggestFlags(t *testing.T) {
	tests := []struct {
		name    string
		guess   string
		green   string
		yellow  string
		greys   []string
		wantErr bool
	}{
		{"valid", "saint", ".....", ".a...", []string{"e", "r"}, false},
		{"no greys", "saint", "sa...", ".....", nil, false},
		{"bad guess", "sa", ".....", ".....", nil, true},
		{"bad green", "saint", "....", ".....", nil, true},
		{"bad grey", "saint", ".....", ".....", []string{"er"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestGuess = tt.guess
			suggestGreen = tt.green
			suggestYellow = tt.yellow
			suggestGreys = tt.greys
			err := validateSuggestFlags()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSuggestFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
