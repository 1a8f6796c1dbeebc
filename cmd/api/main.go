package main

import (
	"os"

	"github.com/mergington/activities/internal/pkg/logger"
	"github.com/mergington/activities/internal/server"
)

// @title Mergington High School API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
