package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"market-board/core/database"
	"market-board/core/middleware/rayid"
	"market-board/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "market-board/docs/swagger"
)

// @title Market Board API
// @version 1.0
// @description Crowd-sourced market board listings and sale history.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the market board server",
	Long:  `Loads the reference tables, migrates the database and serves the upload and query API.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := rt.cfg, rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := rt.connect()
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// Queries and uploads depend on the world tables, so they load before listening.
		resolver, err := rt.resolver(cmd.Context())
		if err != nil {
			logg.Fatal("Failed to load reference data", zap.Error(err))
		}

		mgr := features(logg, db, resolver, cfg)

		if err := database.Migrate(db, mgr.Models()...); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		app := fiber.New(cfg.Server.FiberConfig())

		// RayID must be first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))

		if cfg.Server.Docs {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
