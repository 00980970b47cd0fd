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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	wordsFile  string // CLI override for data.words_file
	freqDir    string // CLI override for data.frequency_dir
	firstGuess string // CLI override for solver.first_guess

	suggestGuess  string
	suggestGreen  string
	suggestYellow string
	suggestGreys  []string

	rootCmd = &cobra.Command{
		Use:   "wordle",
		Short: "A cli helper that narrows down wordle candidates from your feedback",
		Long: `Wordle helper accumulates the green/yellow/grey feedback you get
				each round, filters a word corpus against it, and recommends
				what to guess next.`,
	}

	// --- Interactive Solve ---
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle interactively, one feedback round at a time",
		Run:   runSolve, // Defined in cmd_solve.go
	}

	// --- One-shot Suggest ---
	suggestCmd = &cobra.Command{
		Use:   "suggest",
		Short: "Print candidates and a suggestion for a single round of feedback",
		Run:   runSuggest, // Defined in cmd_suggest.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", "",
		"Path to the word list (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&freqDir, "freq-dir", "",
		"Directory with pos1.txt..pos5.txt frequency tables (overrides the config)")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&firstGuess, "first-guess", "",
		"Opening suggestion shown before any feedback")

	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestGuess, "guess", "", "The word you played")
	suggestCmd.Flags().StringVar(&suggestGreen, "green", ".....",
		"Green feedback token, e.g. \"..a..\"")
	suggestCmd.Flags().StringVar(&suggestYellow, "yellow", ".....",
		"Yellow feedback token, e.g. \"s....\"")
	suggestCmd.Flags().StringSliceVar(&suggestGreys, "grey", nil,
		"Grey letter (repeatable or comma-separated)")
	_ = suggestCmd.MarkFlagRequired("guess")
}
