// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the solver API endpoints.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AleutianAI/wordlehelper/services/solver"
	"github.com/AleutianAI/wordlehelper/services/solverapi/datatypes"
	"github.com/AleutianAI/wordlehelper/services/solverapi/middleware"
	"github.com/AleutianAI/wordlehelper/services/solverapi/telemetry"
)

// HandleFeedback processes one feedback round.
//
// The endpoint is stateless: the request carries the prior constraint
// state, the response returns the updated one. Format errors and
// contradictions map to 400 with the state unchanged; an exhausted
// expansion is a 200 with an empty suggestion, since the caller can still
// continue the game with corrected feedback.
func HandleFeedback(corpus *solver.Corpus, freq solver.FrequencyTable,
	metrics *telemetry.Metrics) gin.HandlerFunc {

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := middleware.GetRequestID(c)
		start := time.Now()

		var req datatypes.FeedbackRequest
		if err := c.BindJSON(&req); err != nil {
			metrics.ValidationFailuresTotal.Add(ctx, 1)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body", "request_id": requestID})
			return
		}
		if err := req.Validate(); err != nil {
			metrics.ValidationFailuresTotal.Add(ctx, 1)
			slog.Info("rejected feedback request", "request_id", requestID, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(), "request_id": requestID})
			return
		}

		cs := solver.NewConstraintSet()
		if req.State != nil {
			var err error
			cs, err = req.State.ToConstraintSet()
			if err != nil {
				metrics.ValidationFailuresTotal.Add(ctx, 1)
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err.Error(), "request_id": requestID})
				return
			}
		}

		result, next, err := solver.PlayRound(cs, corpus, freq,
			req.Guess, req.Green, req.Yellow, req.Greys)
		if err != nil {
			outcome := "invalid_input"
			if errors.Is(err, solver.ErrContradiction) {
				outcome = "contradiction"
			}
			metrics.RoundsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("outcome", outcome)))
			slog.Info("feedback round rejected",
				"request_id", requestID, "outcome", outcome, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(), "request_id": requestID})
			return
		}

		outcome := "ok"
		if result.Solved {
			outcome = "solved"
		}
		metrics.RoundsTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("outcome", outcome)))
		if result.Expanded {
			metrics.ExpansionsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("outcome", "recovered")))
		} else if result.Candidates.IsEmpty() {
			metrics.ExpansionsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("outcome", "exhausted")))
		}
		metrics.CandidateCount.Record(ctx, int64(result.Candidates.Count()))
		metrics.RoundDuration.Record(ctx, time.Since(start).Seconds())

		resp := datatypes.FeedbackResponse{
			RequestID: requestID,
			State:     datatypes.FromConstraintSet(next),
			Candidates: datatypes.CandidateBuckets{
				Unique:   result.Candidates.Unique,
				Repeated: result.Candidates.Repeated,
				Count:    result.Candidates.Count(),
			},
			Suggestion:  result.Suggestion,
			Suggestions: result.Suggestions,
			Expanded:    result.Expanded,
			Solved:      result.Solved,
			SolvedWord:  next.FixedWord(),
		}
		slog.Info("feedback round processed",
			"request_id", requestID,
			"guess", req.Guess,
			"candidates", resp.Candidates.Count,
			"expanded", resp.Expanded,
			"solved", resp.Solved)
		c.JSON(http.StatusOK, resp)
	}
}
