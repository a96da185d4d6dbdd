// Command migrate applies the SQL files under migrations/ to the configured database.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/yigit/memberapi/internal/bootstrap"
	"github.com/yigit/memberapi/internal/db"
	"github.com/yigit/memberapi/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default: $CONFIG_PATH or configs/config.yaml)")
	dir := flag.String("dir", "migrations", "directory holding NNN_name.sql files")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	applied, err := db.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, *dir)
	if err != nil {
		lgr.Error().Err(err).Int("applied", applied).Msg("Migration failed")
		database.Close()
		os.Exit(1)
	}

	lgr.Info().Int("applied", applied).Str("dir", *dir).Msg("Migrations complete")
}
