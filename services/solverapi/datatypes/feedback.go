// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides request and response structures for the solver
// API. The service is stateless: a request carries the caller's accumulated
// constraint state and the response returns the updated state, so clients
// own session persistence.
package datatypes

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/wordlehelper/services/solver"
)

// feedbackValidate is the validator instance for feedback datatypes.
// Initialized in init() with custom validators.
var feedbackValidate *validator.Validate

func init() {
	feedbackValidate = validator.New()

	_ = feedbackValidate.RegisterValidation("guessword", validateGuessWord)
	_ = feedbackValidate.RegisterValidation("feedbacktoken", validateFeedbackToken)
	_ = feedbackValidate.RegisterValidation("greyletter", validateGreyLetter)
}

// validateGuessWord accepts exactly five ASCII letters, any case.
func validateGuessWord(fl validator.FieldLevel) bool {
	word := fl.Field().String()
	if len(word) != solver.WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isASCIILetter(word[i]) {
			return false
		}
	}
	return true
}

// validateFeedbackToken accepts a five-character token of letters and dots,
// e.g. "..a.n" or ".....".
func validateFeedbackToken(fl validator.FieldLevel) bool {
	token := fl.Field().String()
	if len(token) != solver.WordLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] != '.' && !isASCIILetter(token[i]) {
			return false
		}
	}
	return true
}

// validateGreyLetter accepts a single ASCII letter.
func validateGreyLetter(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) == 1 && isASCIILetter(s[0])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ConstraintState is the wire form of a solver.ConstraintSet.
//
// Positions are 1-indexed and letters are single lowercase characters.
// An absent or empty state means no feedback has been recorded yet.
type ConstraintState struct {
	// Fixed maps a position to its confirmed green letter.
	Fixed map[int]string `json:"fixed,omitempty"`

	// ExcludedPositions maps a known-present letter to the positions where
	// it is known not to be.
	ExcludedPositions map[string][]int `json:"excluded_positions,omitempty"`

	// ExcludedLetters lists letters known absent from the solution.
	ExcludedLetters []string `json:"excluded_letters,omitempty"`
}

// ToConstraintSet converts the wire form into the solver's representation.
//
// Malformed entries (positions outside 1..5, multi-character or
// non-lowercase letters) return an error rather than being silently
// dropped, so a corrupted client state cannot quietly widen the search.
func (s ConstraintState) ToConstraintSet() (solver.ConstraintSet, error) {
	cs := solver.NewConstraintSet()
	for pos, letter := range s.Fixed {
		if err := checkStatePos(pos); err != nil {
			return solver.ConstraintSet{}, fmt.Errorf("fixed: %w", err)
		}
		ch, err := checkStateLetter(letter)
		if err != nil {
			return solver.ConstraintSet{}, fmt.Errorf("fixed: %w", err)
		}
		cs.Fixed[pos] = ch
	}
	for letter, positions := range s.ExcludedPositions {
		ch, err := checkStateLetter(letter)
		if err != nil {
			return solver.ConstraintSet{}, fmt.Errorf("excluded_positions: %w", err)
		}
		set := make(map[int]bool, len(positions))
		for _, pos := range positions {
			if err := checkStatePos(pos); err != nil {
				return solver.ConstraintSet{}, fmt.Errorf("excluded_positions: %w", err)
			}
			set[pos] = true
		}
		cs.ExcludedPositions[ch] = set
	}
	for _, letter := range s.ExcludedLetters {
		ch, err := checkStateLetter(letter)
		if err != nil {
			return solver.ConstraintSet{}, fmt.Errorf("excluded_letters: %w", err)
		}
		cs.ExcludedLetters[ch] = true
	}
	// Cross-checks: a letter known to be in the word (fixed or
	// position-excluded) cannot also be globally excluded, and a letter
	// cannot be fixed at a position it is excluded from.
	for pos, ch := range cs.Fixed {
		if cs.ExcludedLetters[ch] {
			return solver.ConstraintSet{}, fmt.Errorf(
				"state: letter %q is both fixed and excluded", string(ch))
		}
		if cs.ExcludedPositions[ch][pos] {
			return solver.ConstraintSet{}, fmt.Errorf(
				"state: letter %q is fixed at excluded position %d", string(ch), pos)
		}
	}
	for ch := range cs.ExcludedPositions {
		if cs.ExcludedLetters[ch] {
			return solver.ConstraintSet{}, fmt.Errorf(
				"state: letter %q is both present and excluded", string(ch))
		}
	}
	return cs, nil
}

// FromConstraintSet converts the solver's representation into the wire form.
// Slices are sorted so identical constraint sets serialize identically.
func FromConstraintSet(cs solver.ConstraintSet) ConstraintState {
	out := ConstraintState{}
	if len(cs.Fixed) > 0 {
		out.Fixed = make(map[int]string, len(cs.Fixed))
		for pos, ch := range cs.Fixed {
			out.Fixed[pos] = string(ch)
		}
	}
	if len(cs.ExcludedPositions) > 0 {
		out.ExcludedPositions = make(map[string][]int, len(cs.ExcludedPositions))
		for ch, positions := range cs.ExcludedPositions {
			list := make([]int, 0, len(positions))
			for pos := range positions {
				list = append(list, pos)
			}
			sort.Ints(list)
			out.ExcludedPositions[string(ch)] = list
		}
	}
	if len(cs.ExcludedLetters) > 0 {
		out.ExcludedLetters = make([]string, 0, len(cs.ExcludedLetters))
		for ch := range cs.ExcludedLetters {
			out.ExcludedLetters = append(out.ExcludedLetters, string(ch))
		}
		sort.Strings(out.ExcludedLetters)
	}
	return out
}

func checkStatePos(pos int) error {
	if pos < 1 || pos > solver.WordLength {
		return fmt.Errorf("position %d out of range 1..%d", pos, solver.WordLength)
	}
	return nil
}

func checkStateLetter(letter string) (byte, error) {
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return 0, fmt.Errorf("letter %q is not a single lowercase letter", letter)
	}
	return letter[0], nil
}

// FeedbackRequest is the body of POST /v1/feedback.
//
// Guess is the word played; Green and Yellow are five-character dot tokens
// ("pl.n." style); Greys lists letters marked absent this round. State is
// the constraint state returned by the previous call, omitted on round one.
type FeedbackRequest struct {
	Guess  string           `json:"guess" validate:"required,guessword"`
	Green  string           `json:"green" validate:"required,feedbacktoken"`
	Yellow string           `json:"yellow" validate:"required,feedbacktoken"`
	Greys  []string         `json:"greys" validate:"omitempty,dive,greyletter"`
	State  *ConstraintState `json:"state,omitempty"`
}

// Validate validates the FeedbackRequest fields using the registered
// custom validators. Call after binding the JSON request.
func (r *FeedbackRequest) Validate() error {
	return feedbackValidate.Struct(r)
}

// CandidateBuckets partitions candidates by letter uniqueness, mirroring
// solver.FilteredResult.
type CandidateBuckets struct {
	Unique   []string `json:"unique"`
	Repeated []string `json:"repeated"`
	Count    int      `json:"count"`
}

// FeedbackResponse is the result of one feedback round.
type FeedbackResponse struct {
	// RequestID echoes the request-scoped ID for correlation.
	RequestID string `json:"request_id"`

	// State is the updated constraint state to send with the next request.
	State ConstraintState `json:"state"`

	// Candidates holds the filtered (or expansion-recovered) words.
	Candidates CandidateBuckets `json:"candidates"`

	// Suggestion is the recommended next guess, empty when even the
	// expansion strategy found nothing.
	Suggestion string `json:"suggestion,omitempty"`

	// Suggestions is the ranked candidate list with scores.
	Suggestions []solver.Suggestion `json:"suggestions,omitempty"`

	// Expanded is true when the direct filter was empty and the candidates
	// came from frequency-driven expansion.
	Expanded bool `json:"expanded"`

	// Solved is true when all five positions are confirmed.
	Solved bool `json:"solved"`

	// SolvedWord is the confirmed word when Solved is true.
	SolvedWord string `json:"solved_word,omitempty"`
}
