package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhollis/mention-monitor/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes sampling and opportunity scoring endpoints, optionally backed by the mention store.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port: servePort,
		// Both are optional: without a database only the stateless
		// endpoints work, without a key the analyze endpoint is disabled.
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
