// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics contains pre-defined metrics for the solver API.
//
// All metrics use the "solver_" prefix for consistent naming.
//
// Thread Safety: Safe for concurrent use after creation.
type Metrics struct {
	// RoundsTotal counts feedback rounds by outcome (ok, contradiction,
	// invalid_input, solved).
	RoundsTotal metric.Int64Counter

	// ExpansionsTotal counts rounds where the direct filter came up empty,
	// by outcome (recovered, exhausted).
	ExpansionsTotal metric.Int64Counter

	// ValidationFailuresTotal counts rejected request bodies.
	ValidationFailuresTotal metric.Int64Counter

	// CandidateCount records the candidate count returned per round.
	CandidateCount metric.Int64Histogram

	// RoundDuration records feedback round duration in seconds.
	RoundDuration metric.Float64Histogram
}

// NewMetrics registers all pre-defined metrics with the provided meter.
// Returns an error if any metric registration fails.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.RoundsTotal, err = meter.Int64Counter(
		"solver_rounds_total",
		metric.WithDescription("Total feedback rounds processed"),
		metric.WithUnit("{round}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rounds_total: %w", err)
	}

	m.ExpansionsTotal, err = meter.Int64Counter(
		"solver_expansions_total",
		metric.WithDescription("Rounds where the filter was empty and expansion ran"),
		metric.WithUnit("{round}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create expansions_total: %w", err)
	}

	m.ValidationFailuresTotal, err = meter.Int64Counter(
		"solver_validation_failures_total",
		metric.WithDescription("Rejected request bodies"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create validation_failures_total: %w", err)
	}

	m.CandidateCount, err = meter.Int64Histogram(
		"solver_candidate_count",
		metric.WithDescription("Candidates returned per round"),
		metric.WithUnit("{word}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 25, 50, 100, 250, 500),
	)
	if err != nil {
		return nil, fmt.Errorf("create candidate_count: %w", err)
	}

	m.RoundDuration, err = meter.Float64Histogram(
		"solver_round_duration_seconds",
		metric.WithDescription("Feedback round duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return nil, fmt.Errorf("create round_duration: %w", err)
	}

	return m, nil
}
