package main

import (
	"flag"
	"os"

	"github.com/yigit/memberapi/internal/pkg/logger"
	"github.com/yigit/memberapi/internal/server"
)

// @title Member API
// @version 1.0
// @description Read-only API over stored student member records

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default: $CONFIG_PATH or configs/config.yaml)")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
