package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plantrx/guide-engine/internal/db"
	"github.com/plantrx/guide-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that generates guides on demand. With DATABASE_URL
set, generated guides can also be stored and fetched later; without it the
server runs in generate-only mode.`,
	RunE: runServe,
}

var (
	servePort   int
	serveAuth   bool
	serveInitDB bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveAuth, "require-auth", false, "Require bearer tokens on mutating endpoints (needs JWT_SECRET and API_KEY_HASH)")
	serveCmd.Flags().BoolVar(&serveInitDB, "init-db", false, "Apply the guide storage schema before starting")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")

	if serveInitDB {
		if databaseURL == "" {
			return fmt.Errorf("--init-db requires DATABASE_URL")
		}
		if err := initSchema(databaseURL); err != nil {
			return err
		}
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		RequireAuth: serveAuth,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func initSchema(databaseURL string) error {
	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	return database.InitSchema(ctx)
}
