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

// DefaultFirstGuess is the opening suggestion when no feedback exists yet.
// It is a configuration default, not computed from the corpus; sessions can
// override it.
const DefaultFirstGuess = "saint"

// Recommend selects the single suggested next guess from a filter result.
//
// The unique-letter bucket is preferred when non-empty (distinct letters
// maximize information gain); otherwise the repeated-letter bucket is used.
// Within a bucket the first word in corpus order wins. Both buckets empty is
// a failure state reported as ErrNoRecommendation, never a silent default.
func Recommend(r FilteredResult) (string, error) {
	if len(r.Unique) > 0 {
		return r.Unique[0], nil
	}
	if len(r.Repeated) > 0 {
		return r.Repeated[0], nil
	}
	return "", ErrNoRecommendation
}
