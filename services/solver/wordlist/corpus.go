// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package wordlist loads the word corpus and positional frequency files the
// solver consumes. Loading happens once at startup; failures here are fatal
// and reported to the caller, which owns any retry policy.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AleutianAI/wordlehelper/services/solver"
)

// Load errors, fatal at startup only.
var (
	// ErrCorpusLoad indicates the word list could not be read or was empty.
	ErrCorpusLoad = errors.New("corpus load failed")

	// ErrFrequencyLoad indicates a positional frequency file could not be read.
	ErrFrequencyLoad = errors.New("frequency load failed")
)

// LoadCorpus reads a word list with one word per line.
//
// Lines are lowercased; blank lines and lines that are not exactly
// solver.WordLength letters are skipped; duplicates collapse. An unreadable
// file or an empty result wraps ErrCorpusLoad.
func LoadCorpus(path string) (*solver.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusLoad, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorpusLoad, path, err)
	}

	corpus := solver.NewCorpus(words)
	if corpus.Len() == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words in %s", ErrCorpusLoad, solver.WordLength, path)
	}
	return corpus, nil
}
