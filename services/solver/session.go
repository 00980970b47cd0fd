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

// State identifies where a session is in the per-round input sequence.
type State int

const (
	// StateAwaitGuess expects the guessed word.
	StateAwaitGuess State = iota
	// StateAwaitGreen expects the green feedback token.
	StateAwaitGreen
	// StateAwaitYellow expects the yellow feedback token.
	StateAwaitYellow
	// StateAwaitGrey expects the grey letter list.
	StateAwaitGrey
	// StateDisplay holds the last round's result until NextRound.
	StateDisplay
)

// String returns the state name for logs and errors.
func (s State) String() string {
	switch s {
	case StateAwaitGuess:
		return "await_guess"
	case StateAwaitGreen:
		return "await_green"
	case StateAwaitYellow:
		return "await_yellow"
	case StateAwaitGrey:
		return "await_grey"
	case StateDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// RoundResult is the outcome of one feedback round.
type RoundResult struct {
	// Candidates is the filter output for the updated constraints.
	Candidates FilteredResult

	// Suggestion is the recommended next guess. Empty when expansion was
	// exhausted (no recommendation available).
	Suggestion string

	// Suggestions is the ranked candidate list (vowel priority, then
	// positional-frequency score).
	Suggestions []Suggestion

	// Expanded is true when the direct filter was empty and the suggestion
	// came from the frequency-driven expansion.
	Expanded bool

	// Solved is true when every position is green-fixed.
	Solved bool
}

// PlayRound runs one full round as a pure function: parse feedback, filter
// the corpus, expand if the filter is empty, recommend.
//
// It returns the round result and the updated ConstraintSet. On a parse
// error the input cs is returned unchanged. Both filter-empty recovery
// outcomes are non-errors: an exhausted expansion yields a result with no
// suggestion rather than a failure, so the session can continue.
func PlayRound(cs ConstraintSet, corpus *Corpus, freq FrequencyTable,
	guess, green, yellow string, greys []string) (RoundResult, ConstraintSet, error) {

	next, err := ApplyFeedback(cs, guess, green, yellow, greys)
	if err != nil {
		return RoundResult{}, cs, err
	}

	result := RoundResult{Solved: next.Solved()}
	result.Candidates = Filter(next, corpus)

	if result.Candidates.IsEmpty() {
		word, expandErr := Expand(next, corpus, freq)
		if expandErr == nil {
			result.Expanded = true
			result.Suggestion = word
			if hasRepeatedLetters(word) {
				result.Candidates.Repeated = []string{word}
			} else {
				result.Candidates.Unique = []string{word}
			}
		}
		// Exhausted expansion leaves Suggestion empty.
	} else if word, recErr := Recommend(result.Candidates); recErr == nil {
		result.Suggestion = word
	}

	result.Suggestions = RankSuggestions(next, result.Candidates.All(), freq)
	return result, next, nil
}

// Session drives rounds against a fixed corpus and frequency table.
//
// The prompt sequence is an explicit state machine (AwaitGuess, AwaitGreen,
// AwaitYellow, AwaitGrey, Display) so any front end — terminal, HTTP, test
// harness — can drive it with validated inputs. The accumulated
// ConstraintSet only ever narrows; a rejected round leaves it untouched and
// resets the machine to AwaitGuess for a retry.
type Session struct {
	corpus      *Corpus
	freq        FrequencyTable
	constraints ConstraintSet
	firstGuess  string
	round       int
	state       State

	pendingGuess  string
	pendingGreen  string
	pendingYellow string
}

// NewSession creates a session with an empty ConstraintSet.
func NewSession(corpus *Corpus, freq FrequencyTable) *Session {
	return &Session{
		corpus:      corpus,
		freq:        freq,
		constraints: NewConstraintSet(),
		firstGuess:  DefaultFirstGuess,
		state:       StateAwaitGuess,
		round:       1,
	}
}

// SetFirstGuess overrides the default opening suggestion for this session.
func (s *Session) SetFirstGuess(word string) {
	if word != "" {
		s.firstGuess = word
	}
}

// FirstGuess returns the opening suggestion, shown while no feedback exists.
func (s *Session) FirstGuess() string {
	return s.firstGuess
}

// Constraints returns a copy of the accumulated constraints.
func (s *Session) Constraints() ConstraintSet {
	return s.constraints.Clone()
}

// Round returns the current 1-indexed round number.
func (s *Session) Round() int {
	return s.round
}

// CurrentState returns the state machine position.
func (s *Session) CurrentState() State {
	return s.state
}

// ProvideGuess accepts the round's guess word.
func (s *Session) ProvideGuess(guess string) error {
	if s.state != StateAwaitGuess {
		return fmt.Errorf("%w: got guess in state %s", ErrInvalidState, s.state)
	}
	if err := checkGuess(normalizeWord(guess)); err != nil {
		return err
	}
	s.pendingGuess = guess
	s.state = StateAwaitGreen
	return nil
}

// ProvideGreen accepts the round's green token.
func (s *Session) ProvideGreen(token string) error {
	if s.state != StateAwaitGreen {
		return fmt.Errorf("%w: got green token in state %s", ErrInvalidState, s.state)
	}
	if err := checkToken("green", normalizeWord(token)); err != nil {
		return err
	}
	s.pendingGreen = token
	s.state = StateAwaitYellow
	return nil
}

// ProvideYellow accepts the round's yellow token.
func (s *Session) ProvideYellow(token string) error {
	if s.state != StateAwaitYellow {
		return fmt.Errorf("%w: got yellow token in state %s", ErrInvalidState, s.state)
	}
	if err := checkToken("yellow", normalizeWord(token)); err != nil {
		return err
	}
	s.pendingYellow = token
	s.state = StateAwaitGrey
	return nil
}

// ProvideGreys accepts the grey letters and completes the round.
//
// On success the session moves to Display with the result available; on a
// contradiction or format error the pending inputs are dropped, the machine
// resets to AwaitGuess, and the constraints remain as they were.
func (s *Session) ProvideGreys(greys []string) (RoundResult, error) {
	if s.state != StateAwaitGrey {
		return RoundResult{}, fmt.Errorf("%w: got grey letters in state %s", ErrInvalidState, s.state)
	}

	result, next, err := PlayRound(s.constraints, s.corpus, s.freq,
		s.pendingGuess, s.pendingGreen, s.pendingYellow, greys)
	s.pendingGuess, s.pendingGreen, s.pendingYellow = "", "", ""
	if err != nil {
		s.state = StateAwaitGuess
		return RoundResult{}, err
	}

	s.constraints = next
	s.state = StateDisplay
	return result, nil
}

// NextRound moves from Display back to AwaitGuess.
func (s *Session) NextRound() error {
	if s.state != StateDisplay {
		return fmt.Errorf("%w: next round requested in state %s", ErrInvalidState, s.state)
	}
	s.round++
	s.state = StateAwaitGuess
	return nil
}
