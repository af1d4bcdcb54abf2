// Command seed provisions a demo account: a user, a project with "todos" and
// "users" resources, and generated fixture records for each. It goes through
// the same services as the HTTP API.
//
// Flags:
//
//	--count        records to generate per resource (overrides SEED_COUNT)
//	--dry-run      log the plan without writing to DB
//	--seed-config  path to seed YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mockapi-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mockapi-backend/internal/app"
	"github.com/heartmarshall/mockapi-backend/internal/app/seeder"
	"github.com/heartmarshall/mockapi-backend/internal/config"
	"github.com/heartmarshall/mockapi-backend/migrations"
)

func main() {
	countFlag := flag.Int("count", -1, "records to generate per resource")
	dryRunFlag := flag.Bool("dry-run", false, "log the plan without writing to DB")
	seedConfigFlag := flag.String("seed-config", "", "path to seed YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*seedConfigFlag)
	if err != nil {
		logger.Error("load seed config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seedCfg.DryRun = true
	}
	if *countFlag >= 0 {
		seedCfg.Count = *countFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	services := app.NewServices(logger, appCfg, pool, nil)

	result, err := seeder.New(logger, services.Auth, services.Projects, *seedCfg).Run(ctx)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if seedCfg.DryRun {
		logger.Info("dry run completed")
		return
	}

	logger.Info("seed completed",
		slog.String("project_id", result.ProjectID.String()),
		slog.String("api_key", result.APIKey),
		slog.Any("records", result.Records),
	)
}
