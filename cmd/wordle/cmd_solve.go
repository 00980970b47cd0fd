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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/wordlehelper/pkg/ux"
	"github.com/AleutianAI/wordlehelper/pkg/validation"
	"github.com/AleutianAI/wordlehelper/services/solver"
)

// quitWords end the interactive loop at the guess prompt.
var quitWords = map[string]bool{"quit": true, "q": true, "exit": true}

func runSolve(cmd *cobra.Command, args []string) {
	corpus, freq, err := loadSolverData()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	session := solver.NewSession(corpus, freq)
	session.SetFirstGuess(resolveFirstGuess())

	ux.Title("Wordle helper")
	ux.Muted(fmt.Sprintf("Corpus loaded: %d words. Type quit at the guess prompt to stop.", corpus.Len()))
	ux.Info("Opening suggestion: " + session.FirstGuess())

	for {
		guess, err := ux.PromptInput(
			fmt.Sprintf("Round %d - what did you guess?", session.Round()),
			session.FirstGuess(),
			func(s string) error {
				if quitWords[strings.ToLower(strings.TrimSpace(s))] {
					return nil
				}
				return validation.ValidateWord(strings.TrimSpace(s))
			})
		if err != nil {
			if errors.Is(err, ux.ErrAborted) {
				return
			}
			ux.Error(err.Error())
			os.Exit(1)
		}
		guess = strings.ToLower(strings.TrimSpace(guess))
		if quitWords[guess] {
			ux.Muted("Bye.")
			return
		}
		if err := session.ProvideGuess(guess); err != nil {
			ux.Error(err.Error())
			continue
		}

		green, err := promptToken("Green letters (dot for misses)", "..a..")
		if err != nil {
			return
		}
		if err := session.ProvideGreen(green); err != nil {
			ux.Error(err.Error())
			continue
		}

		yellow, err := promptToken("Yellow letters (dot for misses)", ".s...")
		if err != nil {
			return
		}
		if err := session.ProvideYellow(yellow); err != nil {
			ux.Error(err.Error())
			continue
		}

		greyLine, err := ux.PromptInput("Grey letters (space separated, empty for none)", "e r",
			validation.ValidateGreys)
		if err != nil {
			if errors.Is(err, ux.ErrAborted) {
				return
			}
			ux.Error(err.Error())
			os.Exit(1)
		}

		result, err := session.ProvideGreys(solver.SplitGreys(greyLine))
		if err != nil {
			// Contradictions reset the round; the constraints are untouched.
			ux.Error(err.Error())
			logger.Warn("round rejected", "round", session.Round(), "error", err)
			continue
		}

		fmt.Print(renderConstraints(session.Constraints()))
		fmt.Print(renderResult(result))
		logger.Info("round played",
			"round", session.Round(),
			"candidates", result.Candidates.Count(),
			"expanded", result.Expanded)

		if result.Solved {
			ux.Success("Solved: " + session.Constraints().FixedWord())
			return
		}
		if err := session.NextRound(); err != nil {
			ux.Error(err.Error())
			return
		}
	}
}

// promptToken asks for a green or yellow token, treating an abort as quit.
func promptToken(title, placeholder string) (string, error) {
	token, err := ux.PromptInput(title, placeholder, func(s string) error {
		return validation.ValidateToken(strings.TrimSpace(s))
	})
	if err != nil {
		if !errors.Is(err, ux.ErrAborted) {
			ux.Error(err.Error())
			os.Exit(1)
		}
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(token)), nil
}
