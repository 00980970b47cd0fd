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

	"github.com/AleutianAI/wordlehelper/cmd/wordle/config"
	"github.com/AleutianAI/wordlehelper/services/solver"
	"github.com/AleutianAI/wordlehelper/services/solver/wordlist"
)

// loadSolverData resolves the word list and frequency tables from flags or
// the config and loads them.
func loadSolverData() (*solver.Corpus, solver.FrequencyTable, error) {
	words := wordsFile
	if words == "" {
		words = config.ExpandPath(config.Global.Data.WordsFile)
	}
	freqPath := freqDir
	if freqPath == "" {
		freqPath = config.ExpandPath(config.Global.Data.FrequencyDir)
	}

	corpus, err := wordlist.LoadCorpus(words)
	if err != nil {
		return nil, solver.FrequencyTable{}, fmt.Errorf("loading %s: %w", words, err)
	}
	freq, err := wordlist.LoadFrequencyTable(freqPath)
	if err != nil {
		return nil, solver.FrequencyTable{}, fmt.Errorf("loading %s: %w", freqPath, err)
	}
	return corpus, freq, nil
}

// resolveFirstGuess picks the opening suggestion: flag, then config, then
// the built-in default.
func resolveFirstGuess() string {
	if firstGuess != "" {
		return firstGuess
	}
	if config.Global.Solver.FirstGuess != "" {
		return config.Global.Solver.FirstGuess
	}
	return solver.DefaultFirstGuess
}
