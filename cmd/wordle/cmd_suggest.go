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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/wordlehelper/pkg/ux"
	"github.com/AleutianAI/wordlehelper/pkg/validation"
	"github.com/AleutianAI/wordlehelper/services/solver"
)

func runSuggest(cmd *cobra.Command, args []string) {
	if err := validateSuggestFlags(); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	corpus, freq, err := loadSolverData()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	result, next, err := solver.PlayRound(solver.NewConstraintSet(), corpus, freq,
		suggestGuess, suggestGreen, suggestYellow, suggestGreys)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	fmt.Print(renderConstraints(next))
	fmt.Print(renderResult(result))
	if result.Solved {
		ux.Success("Solved: " + next.FixedWord())
	}
}

func validateSuggestFlags() error {
	if err := validation.ValidateWord(suggestGuess); err != nil {
		return err
	}
	if err := validation.ValidateToken(suggestGreen); err != nil {
		return fmt.Errorf("--green: %w", err)
	}
	if err := validation.ValidateToken(suggestYellow); err != nil {
		return fmt.Errorf("--yellow: %w", err)
	}
	if err := validation.ValidateGreys(strings.Join(suggestGreys, " ")); err != nil {
		return fmt.Errorf("--grey: %w", err)
	}
	return nil
}
