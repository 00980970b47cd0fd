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

import "errors"

// Sentinel errors for the solver package.
var (
	// ErrInputFormat indicates malformed feedback input (wrong length,
	// disallowed character). The round is retried; constraints are unchanged.
	ErrInputFormat = errors.New("invalid feedback input")

	// ErrContradiction indicates feedback that is logically inconsistent
	// with itself or with previously accumulated constraints.
	ErrContradiction = errors.New("contradictory feedback")

	// ErrExpansionExhausted indicates the frequency-driven expansion ran out
	// of letters without finding a corpus word.
	ErrExpansionExhausted = errors.New("expansion exhausted")

	// ErrNoRecommendation indicates both candidate buckets are empty.
	ErrNoRecommendation = errors.New("no recommendation available")

	// ErrInvalidState indicates a session operation out of turn order.
	ErrInvalidState = errors.New("invalid session state")
)
