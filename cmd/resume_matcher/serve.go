package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume/JD matching, analysis history and skill statistics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	eng, cleanup, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var store *db.DB
	if cfg.DatabaseURL != "" {
		store, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return fmt.Errorf("running migrations: %w", err)
		}
		logger.Info("persistence enabled")
	} else {
		logger.Info("DATABASE_URL not set, history and statistics disabled")
	}

	srv := server.New(eng, server.Options{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Store:          store,
		Logger:         logger,
	})
	return srv.Start()
}
