// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for user-provided
// puzzle feedback.
//
// The validators here gate everything typed at a prompt or passed on a
// flag before it reaches the solver, so malformed input fails with a clear
// message instead of surfacing as a solver error mid-round.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// wordPattern matches a guess word: exactly five letters.
var wordPattern = regexp.MustCompile(`^[a-zA-Z]{5}$`)

// tokenPattern matches a feedback token: five letters or dots, e.g. "pl.n."
var tokenPattern = regexp.MustCompile(`^[a-zA-Z.]{5}$`)

// greysPattern matches a grey letter list: letters separated by spaces
// and/or commas, e.g. "e r" or "e,r".
var greysPattern = regexp.MustCompile(`^[a-zA-Z]([ ,]+[a-zA-Z])*$`)

// ValidateWord validates a guessed word.
//
// Valid words are exactly five ASCII letters, any case.
func ValidateWord(word string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if !wordPattern.MatchString(word) {
		return fmt.Errorf("invalid word: %q (must be exactly 5 letters)", word)
	}
	return nil
}

// ValidateToken validates a green or yellow feedback token.
//
// Valid tokens are five characters, each a letter or a dot placeholder.
func ValidateToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if !tokenPattern.MatchString(token) {
		return fmt.Errorf("invalid token: %q (must be 5 letters or dots, e.g. \"..a.t\")", token)
	}
	return nil
}

// ValidateGreys validates a grey letter list as typed by the user.
//
// An empty string is valid (no grey letters this round). Otherwise the
// list must be single letters separated by spaces and/or commas.
func ValidateGreys(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !greysPattern.MatchString(line) {
		return fmt.Errorf("invalid grey letters: %q (single letters separated by spaces or commas)", line)
	}
	return nil
}

// SanitizeWord normalizes and validates a word in one step.
// Returns the lowercase word if valid, or an error if invalid.
func SanitizeWord(word string) (string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if err := ValidateWord(word); err != nil {
		return "", err
	}
	return word, nil
}
