// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/AleutianAI/wordlehelper/services/solver"
	"github.com/AleutianAI/wordlehelper/services/solverapi/datatypes"
	"github.com/AleutianAI/wordlehelper/services/solverapi/middleware"
	"github.com/AleutianAI/wordlehelper/services/solverapi/telemetry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T, words []string, freq solver.FrequencyTable) *gin.Engine {
	t.Helper()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/v1/feedback", HandleFeedback(solver.NewCorpus(words), freq, metrics))
	return router
}

func postFeedback(t *testing.T, router *gin.Engine, req datatypes.FeedbackRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/v1/feedback", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)
	return w
}

func TestHandleFeedback_FiltersCandidates(t *testing.T) {
	router := testRouter(t, []string{"saint", "slant", "plant", "chant", "grant"},
		solver.FrequencyTable{})

	w := postFeedback(t, router, datatypes.FeedbackRequest{
		Guess:  "saint",
		Green:  ".....",
		Yellow: ".a...",
		Greys:  []string{"s", "i"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"plant", "chant", "grant"}, resp.Candidates.Unique)
	assert.Empty(t, resp.Candidates.Repeated)
	assert.Equal(t, 3, resp.Candidates.Count)
	assert.Equal(t, "plant", resp.Suggestion)
	assert.False(t, resp.Expanded)
	assert.False(t, resp.Solved)
	assert.NotEmpty(t, resp.RequestID)

	// State carries forward the round's knowledge.
	assert.ElementsMatch(t, []string{"i", "s"}, resp.State.ExcludedLetters)
	assert.Equal(t, []int{2}, resp.State.ExcludedPositions["a"])
}

func TestHandleFeedback_StateRoundTrip(t *testing.T) {
	router := testRouter(t, []string{"saint", "slant", "plant", "chant", "grant"},
		solver.FrequencyTable{})

	w := postFeedback(t, router, datatypes.FeedbackRequest{
		Guess:  "chant",
		Green:  "chant",
		Yellow: ".....",
		State: &datatypes.ConstraintState{
			ExcludedLetters: []string{"s", "i"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Solved)
	assert.Equal(t, "chant", resp.SolvedWord)
	assert.Equal(t, "c", resp.State.Fixed[1])
	assert.Equal(t, "t", resp.State.Fixed[5])
	assert.ElementsMatch(t, []string{"i", "s"}, resp.State.ExcludedLetters)
}

func TestHandleFeedback_ContradictionIs400(t *testing.T) {
	router := testRouter(t, []string{"saint"}, solver.FrequencyTable{})

	// Yellow on a letter the carried state already excludes.
	w := postFeedback(t, router, datatypes.FeedbackRequest{
		Guess:  "saint",
		Green:  ".....",
		Yellow: ".a...",
		State: &datatypes.ConstraintState{
			ExcludedLetters: []string{"a"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestHandleFeedback_ValidationFailures(t *testing.T) {
	router := testRouter(t, []string{"saint"}, solver.FrequencyTable{})

	tests := []struct {
		name string
		req  datatypes.FeedbackRequest
	}{
		{"guess too long", datatypes.FeedbackRequest{
			Guess: "toolong", Green: ".....", Yellow: "....."}},
		{"missing green", datatypes.FeedbackRequest{
			Guess: "saint", Yellow: "....."}},
		{"bad token character", datatypes.FeedbackRequest{
			Guess: "saint", Green: "..#..", Yellow: "....."}},
		{"multi-letter grey", datatypes.FeedbackRequest{
			Guess: "saint", Green: ".....", Yellow: ".....", Greys: []string{"ab"}}},
		{"bad state position", datatypes.FeedbackRequest{
			Guess: "saint", Green: ".....", Yellow: ".....",
			State: &datatypes.ConstraintState{Fixed: map[int]string{9: "a"}}}},
		{"state letter fixed and excluded", datatypes.FeedbackRequest{
			Guess: "saint", Green: ".....", Yellow: ".....",
			State: &datatypes.ConstraintState{
				Fixed:           map[int]string{1: "a"},
				ExcludedLetters: []string{"a"}}}},
		{"state letter present and excluded", datatypes.FeedbackRequest{
			Guess: "saint", Green: ".....", Yellow: ".....",
			State: &datatypes.ConstraintState{
				ExcludedPositions: map[string][]int{"b": {2}},
				ExcludedLetters:   []string{"b"}}}},
		{"state letter fixed at excluded position", datatypes.FeedbackRequest{
			Guess: "saint", Green: ".....", Yellow: ".....",
			State: &datatypes.ConstraintState{
				Fixed:             map[int]string{3: "c"},
				ExcludedPositions: map[string][]int{"c": {3}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postFeedback(t, router, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleFeedback_ExpansionRecovers(t *testing.T) {
	freq := solver.NewFrequencyTable(map[int]string{5: "te"})
	router := testRouter(t, []string{"plant"}, freq)

	// The stray yellow empties the direct filter; expansion still finds the
	// only word compatible with the position constraints.
	w := postFeedback(t, router, datatypes.FeedbackRequest{
		Guess:  "plane",
		Green:  "plan.",
		Yellow: "....y",
		Greys:  []string{"e"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Expanded)
	assert.Equal(t, "plant", resp.Suggestion)
	assert.Equal(t, []string{"plant"}, resp.Candidates.Unique)
}

func TestHandleFeedback_ExhaustedExpansionIs200(t *testing.T) {
	// No frequency data at all, so expansion has nothing to try.
	router := testRouter(t, []string{"slant"}, solver.FrequencyTable{})

	w := postFeedback(t, router, datatypes.FeedbackRequest{
		Guess:  "slant",
		Green:  ".....",
		Yellow: ".....",
		Greys:  []string{"s", "l", "a", "n", "t"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Empty(t, resp.Suggestion)
	assert.False(t, resp.Expanded)
	assert.Equal(t, 0, resp.Candidates.Count)
}

func TestHandleFeedback_ClientRequestIDEchoed(t *testing.T) {
	router := testRouter(t, []string{"saint"}, solver.FrequencyTable{})

	body, _ := json.Marshal(datatypes.FeedbackRequest{
		Guess: "saint", Green: "saint", Yellow: "....."})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/feedback", bytes.NewReader(body))
	req.Header.Set(middleware.RequestIDHeader, "round-7")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "round-7", w.Header().Get(middleware.RequestIDHeader))

	var resp datatypes.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "round-7", resp.RequestID)
}
