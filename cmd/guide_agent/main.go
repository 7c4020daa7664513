// Package main provides the entry point for the PlantRx guide engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guide_agent",
	Short: "PlantRx transformation guide engine",
	Long:  "guide_agent assembles personalized natural health transformation guides as downloadable PDFs, from a questionnaire profile and free-text answers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
