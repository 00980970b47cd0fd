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
	"sort"
	"strings"

	"github.com/AleutianAI/wordlehelper/pkg/ux"
	"github.com/AleutianAI/wordlehelper/services/solver"
)

// wordsPerLine keeps the candidate lists readable in a standard terminal.
const wordsPerLine = 8

// renderResult formats one round's outcome for the terminal.
func renderResult(result solver.RoundResult) string {
	var b strings.Builder

	if result.Expanded {
		b.WriteString(ux.Styles.Warning.Render(
			"No corpus word matched directly; suggestion found by expansion."))
		b.WriteString("\n")
	}

	b.WriteString(renderBucket("Words without repeated letters", result.Candidates.Unique))
	b.WriteString(renderBucket("Words with repeated letters", result.Candidates.Repeated))

	if len(result.Suggestions) > 0 {
		b.WriteString(renderSuggestions(result.Suggestions))
	}

	if result.Suggestion != "" {
		b.WriteString(fmt.Sprintf("%s %s\n",
			ux.Styles.Subtitle.Render("Next guess:"),
			ux.Styles.Highlight.Render(result.Suggestion)))
	} else {
		b.WriteString(ux.Styles.Error.Render(
			"No suggestion available. Re-check the feedback you entered."))
		b.WriteString("\n")
	}
	return b.String()
}

// renderBucket formats one candidate bucket, wrapping long lists.
func renderBucket(title string, words []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d)\n", ux.Styles.Subtitle.Render(title), len(words)))
	if len(words) == 0 {
		b.WriteString(ux.Styles.Muted.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}
	for i := 0; i < len(words); i += wordsPerLine {
		end := i + wordsPerLine
		if end > len(words) {
			end = len(words)
		}
		b.WriteString("  " + strings.Join(words[i:end], "  ") + "\n")
	}
	return b.String()
}

// renderSuggestions formats the ranked list. Lower score means better
// positional-frequency fit.
func renderSuggestions(suggestions []solver.Suggestion) string {
	var b strings.Builder
	b.WriteString(ux.Styles.Subtitle.Render("Ranked suggestions"))
	b.WriteString("\n")
	limit := len(suggestions)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("  %2d. %s  %s\n", i+1,
			ux.Styles.Bold.Render(suggestions[i].Word),
			ux.Styles.Muted.Render(fmt.Sprintf("(score %d)", suggestions[i].Score))))
	}
	return b.String()
}

// renderConstraints shows the accumulated knowledge as a board row plus
// the present and absent letter sets.
func renderConstraints(cs solver.ConstraintSet) string {
	var b strings.Builder

	tiles := make([]string, 0, solver.WordLength)
	for pos := 1; pos <= solver.WordLength; pos++ {
		if ch, ok := cs.Fixed[pos]; ok {
			tiles = append(tiles, ux.Styles.TileGreen.Render(strings.ToUpper(string(ch))))
		} else {
			tiles = append(tiles, ux.Styles.Muted.Render("·"))
		}
	}
	b.WriteString("Board: " + strings.Join(tiles, " ") + "\n")

	if present := sortedLetters(letterSetFromPositions(cs.ExcludedPositions)); len(present) > 0 {
		b.WriteString("In the word: " + ux.Styles.TileYellow.Render(strings.Join(present, " ")) + "\n")
	}
	if absent := sortedLetters(cs.ExcludedLetters); len(absent) > 0 {
		b.WriteString("Not in the word: " + ux.Styles.TileGrey.Render(strings.Join(absent, " ")) + "\n")
	}
	return b.String()
}

func letterSetFromPositions(m map[byte]map[int]bool) map[byte]bool {
	set := make(map[byte]bool, len(m))
	for ch := range m {
		set[ch] = true
	}
	return set
}

func sortedLetters(set map[byte]bool) []string {
	out := make([]string, 0, len(set))
	for ch := range set {
		out = append(out, string(ch))
	}
	sort.Strings(out)
	return out
}
