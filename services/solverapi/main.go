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
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleutianAI/wordlehelper/cmd/wordle/config"
	"github.com/AleutianAI/wordlehelper/services/solver"
	"github.com/AleutianAI/wordlehelper/services/solver/wordlist"
	"github.com/AleutianAI/wordlehelper/services/solverapi/middleware"
	"github.com/AleutianAI/wordlehelper/services/solverapi/routes"
	"github.com/AleutianAI/wordlehelper/services/solverapi/telemetry"
)

const defaultPort = "12310"

// resolvePort picks the listen port: environment override first, then the
// config file, then the built-in default.
func resolvePort(env string, cfgPort int) string {
	if env != "" {
		return env
	}
	if cfgPort > 0 {
		return strconv.Itoa(cfgPort)
	}
	return defaultPort
}

// resolvePath picks a data path: environment override first, then the
// config file (with ~ expanded), then the built-in default.
func resolvePath(env, cfg, fallback string) string {
	if env != "" {
		return env
	}
	if cfg != "" {
		return config.ExpandPath(cfg)
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// The config file is shared with the CLI. A missing or unreadable
	// config is not fatal for the service: env vars and defaults cover
	// every setting.
	if err := config.Load(); err != nil {
		slog.Warn("config file unavailable, using environment and defaults", "error", err)
	}

	port := resolvePort(os.Getenv("SOLVER_PORT"), config.Global.Server.Port)
	wordsPath := resolvePath(os.Getenv("SOLVER_WORDS_FILE"),
		config.Global.Data.WordsFile, "lib/words.txt")
	freqDir := resolvePath(os.Getenv("SOLVER_FREQ_DIR"),
		config.Global.Data.FrequencyDir, "lib/frequency")
	firstGuess := os.Getenv("SOLVER_FIRST_GUESS")
	if firstGuess == "" {
		firstGuess = config.Global.Solver.FirstGuess
	}
	if firstGuess == "" {
		firstGuess = solver.DefaultFirstGuess
	}

	corpus, err := wordlist.LoadCorpus(wordsPath)
	if err != nil {
		log.Fatalf("FATAL: could not load the word corpus: %v", err)
	}
	freq, err := wordlist.LoadFrequencyTable(freqDir)
	if err != nil {
		log.Fatalf("FATAL: could not load the frequency tables: %v", err)
	}
	slog.Info("loaded solver data", "words", corpus.Len(), "frequency_dir", freqDir)

	meter, err := telemetry.Init()
	if err != nil {
		log.Fatalf("FATAL: could not initialize telemetry: %v", err)
	}
	metrics, err := telemetry.NewMetrics(meter)
	if err != nil {
		log.Fatalf("FATAL: could not register metrics: %v", err)
	}

	router := gin.Default()
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(middleware.RequestID())

	routes.SetupRoutes(router, corpus, freq, metrics, firstGuess)

	log.Println("Starting the solver API server on port ", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
