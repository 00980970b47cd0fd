// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type WordleConfig struct {
	// Data: where the word corpus and frequency tables live
	Data DataConfig `yaml:"data"`

	// Solver: tunable solver behavior
	Solver SolverConfig `yaml:"solver"`

	// Server: settings for the solver API service
	Server ServerConfig `yaml:"server"`
}

type DataConfig struct {
	WordsFile    string `yaml:"words_file"`    // e.g. ~/.wordlehelper/words.txt
	FrequencyDir string `yaml:"frequency_dir"` // e.g. ~/.wordlehelper/frequency
}

type SolverConfig struct {
	// FirstGuess is the opening suggestion shown before any feedback.
	FirstGuess string `yaml:"first_guess"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DefaultConfig returns the config written on first run.
func DefaultConfig() WordleConfig {
	return WordleConfig{
		Data: DataConfig{
			WordsFile:    "~/.wordlehelper/words.txt",
			FrequencyDir: "~/.wordlehelper/frequency",
		},
		Solver: SolverConfig{
			FirstGuess: "saint",
		},
		Server: ServerConfig{
			Port: 12310,
		},
	}
}
