// Package main provides the entry point for the mention-monitor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mention_agent",
	Short: "Mention monitoring sampling and opportunity tools",
	Long:  "mention_agent reduces collected keyword mentions to cost-bounded representative samples for AI analysis and surfaces the single best opportunity from pre-filtered candidates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
