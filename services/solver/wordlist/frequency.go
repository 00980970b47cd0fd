// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AleutianAI/wordlehelper/services/solver"
)

// LoadFrequencyTable reads pos1.txt .. pos5.txt from dir.
//
// Each line is "<count> <letter>", already sorted by descending count; a
// bare "<letter>" line is tolerated for hand-edited files. Only the letter
// order matters to the solver, so counts are discarded. A missing file for
// a position leaves that position's list empty (expansion then has nothing
// to try there); an unreadable file wraps ErrFrequencyLoad.
func LoadFrequencyTable(dir string) (solver.FrequencyTable, error) {
	perPosition := make(map[int]string, solver.WordLength)
	for pos := 1; pos <= solver.WordLength; pos++ {
		path := filepath.Join(dir, fmt.Sprintf("pos%d.txt", pos))
		letters, err := loadPositionFile(path)
		if err != nil {
			return solver.FrequencyTable{}, err
		}
		perPosition[pos] = letters
	}
	return solver.NewFrequencyTable(perPosition), nil
}

// loadPositionFile returns the rank-ordered letters of one frequency file.
func loadPositionFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrFrequencyLoad, err)
	}
	defer f.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// "<count> <letter>" keeps the last field; "<letter>" stands alone.
		letter := strings.ToLower(fields[len(fields)-1])
		if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
			continue
		}
		b.WriteString(letter)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrFrequencyLoad, path, err)
	}
	return b.String(), nil
}
