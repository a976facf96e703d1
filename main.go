package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookswap/bookswap/bookswap"
	"github.com/bookswap/bookswap/bookswap/logger"
	"github.com/bookswap/bookswap/bookswap/migration"
	"github.com/bookswap/bookswap/bookswap/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("BookSwap")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting BookSwap ranking engine",
		slog.String("version", version),
		slog.String("commit", commit))

	importLegacy := flag.Bool("import-legacy", false, "import legacy MongoDB data before serving")
	refreshOnStart := flag.Bool("refresh-on-start", false, "recompute all scores on startup")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := bookswap.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	customHandler.SetLevel(cfg.Log.Level)
	slog.Info("Configuration loaded successfully")

	setupCtx, setupCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer setupCancel()

	app := bookswap.New(*cfg, version, commit)
	if err := app.Setup(setupCtx); err != nil {
		slog.Error("Failed to set up application", slog.Any("error", err))
		os.Exit(-1)
	}
	defer app.Close()

	if *importLegacy {
		if err := runLegacyImport(cfg, app); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	if *refreshOnStart {
		refreshCtx, refreshCancel := context.WithTimeout(context.Background(), 30*time.Minute)
		updated, err := app.RankingService.UpdateAllUsers(refreshCtx)
		refreshCancel()
		if err != nil {
			slog.Error("Startup refresh failed", slog.Any("error", err))
			os.Exit(-1)
		}
		slog.Info("Startup refresh complete", slog.Int("updated", updated))
	}

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()
	if err := app.Scheduler.Start(schedulerCtx); err != nil {
		slog.Error("Failed to start scheduler", slog.Any("error", err))
		os.Exit(-1)
	}

	webApp := &web.WebApp{
		DB:           app.DB,
		Rankings:     app.RankingService,
		Matching:     app.MatchingService,
		Achievements: app.AchievementService,
		Scheduler:    app.Scheduler,
		Version:      version,
	}
	server := web.NewServer(webApp, cfg.Server)

	address := cfg.Server.Host
	if address == "" {
		address = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	listenAddr := fmt.Sprintf("%s:%d", address, port)

	go func() {
		slog.Info("HTTP server listening", slog.String("address", listenAddr))
		if err := server.Listen(listenAddr); err != nil {
			slog.Error("HTTP server stopped", slog.Any("error", err))
		}
	}()

	slog.Info("BookSwap is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down...")

	app.Scheduler.Stop()
	schedulerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.Any("error", err))
	}
	slog.Info("Shutdown complete")
}

// runLegacyImport pulls the old marketplace data in, preferring a live Mongo
// connection and falling back to BSON dump files.
func runLegacyImport(cfg *bookswap.Config, app *bookswap.App) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	migrator := migration.NewMigrator(app.DB.BunDB(), cfg.Migration.DataDir)
	migrator.SetBatchSize(cfg.Migration.BatchSize)

	if cfg.Migration.MongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Migration.MongoURI))
		if err != nil {
			return err
		}
		defer client.Disconnect(ctx)

		migrator.UseMongo(client, cfg.Migration.MongoDB)
		return migrator.MigrateAllFromMongo(ctx)
	}
	return migrator.MigrateAll(ctx)
}
