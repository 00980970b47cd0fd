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
	"fmt"
	"strings"
	"unicode"
)

// ApplyFeedback folds one round of feedback into a ConstraintSet.
//
// Inputs are case-insensitive. green and yellow are WordLength tokens over
// [a-z.] where '.' means "no feedback for this position"; greys is a list of
// single letters. The receiver-style input cs is never mutated: on success a
// new ConstraintSet is returned, on error cs is returned unchanged so a
// failed round can simply be retried.
//
// Errors wrap ErrInputFormat for malformed tokens and ErrContradiction for
// feedback that conflicts with the guess, with itself, or with previously
// accumulated constraints. Feedback is applied atomically: a contradiction
// anywhere leaves the whole round unapplied.
//
// Grey letters that are also green or yellow (this round or earlier) are NOT
// globally excluded. Wordle reports extra copies of a confirmed letter as
// grey, so such a grey only means "no additional instances".
func ApplyFeedback(cs ConstraintSet, guess, green, yellow string, greys []string) (ConstraintSet, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	green = strings.ToLower(strings.TrimSpace(green))
	yellow = strings.ToLower(strings.TrimSpace(yellow))

	if err := checkGuess(guess); err != nil {
		return cs, err
	}
	if err := checkToken("green", green); err != nil {
		return cs, err
	}
	if err := checkToken("yellow", yellow); err != nil {
		return cs, err
	}
	letters, err := normalizeGreys(greys)
	if err != nil {
		return cs, err
	}

	next := cs.Clone()

	// Greens fix positions.
	for i := 0; i < WordLength; i++ {
		ch := green[i]
		if ch == '.' {
			continue
		}
		pos := i + 1
		if guess[i] != ch {
			return cs, fmt.Errorf("%w: green letter %q at position %d does not match guess letter %q",
				ErrContradiction, ch, pos, guess[i])
		}
		if prev, ok := next.Fixed[pos]; ok && prev != ch {
			return cs, fmt.Errorf("%w: position %d already fixed to %q, got green %q",
				ErrContradiction, pos, prev, ch)
		}
		if next.ExcludedLetters[ch] {
			return cs, fmt.Errorf("%w: letter %q was already ruled absent but is now green",
				ErrContradiction, ch)
		}
		next.Fixed[pos] = ch
	}

	// Yellows record presence plus a wrong position.
	for i := 0; i < WordLength; i++ {
		ch := yellow[i]
		if ch == '.' {
			continue
		}
		pos := i + 1
		if fixed, ok := next.Fixed[pos]; ok {
			if fixed == ch {
				return cs, fmt.Errorf("%w: letter %q at position %d cannot be both green and yellow",
					ErrContradiction, ch, pos)
			}
			return cs, fmt.Errorf("%w: yellow %q at position %d conflicts with green %q",
				ErrContradiction, ch, pos, fixed)
		}
		if next.ExcludedLetters[ch] {
			return cs, fmt.Errorf("%w: letter %q was already ruled absent but is now yellow",
				ErrContradiction, ch)
		}
		if next.ExcludedPositions[ch] == nil {
			next.ExcludedPositions[ch] = make(map[int]bool)
		}
		next.ExcludedPositions[ch][pos] = true
	}

	// Greys exclude letters globally, except letters already confirmed
	// present (the duplicate-letter disambiguation rule).
	for _, ch := range letters {
		if next.knownPresent(ch) {
			continue
		}
		next.ExcludedLetters[ch] = true
	}

	return next, nil
}

// checkGuess validates the guess word shape.
func checkGuess(guess string) error {
	if len(guess) != WordLength {
		return fmt.Errorf("%w: guess must be exactly %d letters (got %d)",
			ErrInputFormat, WordLength, len(guess))
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return fmt.Errorf("%w: guess must contain only letters", ErrInputFormat)
		}
	}
	return nil
}

// checkToken validates a green/yellow token shape.
func checkToken(kind, tok string) error {
	if len(tok) != WordLength {
		return fmt.Errorf("%w: %s token must be exactly %d characters (got %d)",
			ErrInputFormat, kind, WordLength, len(tok))
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] == '.' || (tok[i] >= 'a' && tok[i] <= 'z') {
			continue
		}
		return fmt.Errorf("%w: %s token must contain only letters and dots", ErrInputFormat, kind)
	}
	return nil
}

// normalizeGreys lowercases and validates grey letter entries. Each entry
// must be a single letter; whitespace-only entries are dropped.
func normalizeGreys(greys []string) ([]byte, error) {
	out := make([]byte, 0, len(greys))
	for _, g := range greys {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if len(g) != 1 || g[0] < 'a' || g[0] > 'z' {
			return nil, fmt.Errorf("%w: each grey entry must be a single letter (got %q)",
				ErrInputFormat, g)
		}
		out = append(out, g[0])
	}
	return out, nil
}

// SplitGreys splits a grey input line into entries. Entries may be
// separated by whitespace, commas, or both, e.g. "e r" or "e,r".
// An empty line is a valid "no grey letters" input.
func SplitGreys(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// normalizeWord lowercases and trims an input word or token.
func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
