package main

import (
	"os"

	"github.com/studymate/courseapi/internal/pkg/logger" // Still needed for initial error logging
	"github.com/studymate/courseapi/internal/server"
)

// @title StudyMate Course API
// @version 1.0
// @description Course catalog with filtered listings, category statistics and an LLM course advisor

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, NewCompleter, SetupDatabase, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
