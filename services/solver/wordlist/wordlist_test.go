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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "SAINT\nslant\n\nslant\ntoolong\nab\nplant\n")

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)

	// Lowercased, deduped, invalid lengths dropped, order preserved.
	assert.Equal(t, []string{"saint", "slant", "plant"}, corpus.Words())
	assert.True(t, corpus.Contains("slant"))
	assert.False(t, corpus.Contains("toolong"))
}

func TestLoadCorpus_MissingFile(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorpusLoad)
}

func TestLoadCorpus_EmptyList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "toolong\nab\n")

	_, err := LoadCorpus(path)
	assert.ErrorIs(t, err, ErrCorpusLoad)
}

func TestLoadFrequencyTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pos1.txt", "1132 s\n930 c\n810 b\n")
	writeFile(t, dir, "pos2.txt", "a\no\ni\n") // bare-letter format
	writeFile(t, dir, "pos3.txt", "500 A\n400 i\n")
	writeFile(t, dir, "pos4.txt", "")
	writeFile(t, dir, "pos5.txt", "700 e\nnot-a-letter-word x9\n600 y\n")

	table, err := LoadFrequencyTable(dir)
	require.NoError(t, err)

	assert.Equal(t, []byte("scb"), table.Letters(1))
	assert.Equal(t, []byte("aoi"), table.Letters(2))
	assert.Equal(t, []byte("ai"), table.Letters(3), "letters are lowercased")
	assert.Empty(t, table.Letters(4))
	assert.Equal(t, []byte("ey"), table.Letters(5), "junk lines are skipped")

	rank, ok := table.RankOf(1, 'c')
	require.True(t, ok)
	assert.Equal(t, 2, rank)
}

func TestLoadFrequencyTable_MissingFilesAreEmpty(t *testing.T) {
	// No posN.txt files at all: every position list is empty, no error.
	table, err := LoadFrequencyTable(t.TempDir())
	require.NoError(t, err)
	for pos := 1; pos <= 5; pos++ {
		assert.Empty(t, table.Letters(pos))
	}
}
