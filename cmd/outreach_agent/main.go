// Package main provides the entry point for the cold outreach CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outreach_agent",
	Short: "Cold outreach campaign tool",
	Long:  "outreach_agent extracts structured data from a resume and a contact list, generates personalized cold emails with AI and heuristic fallbacks, and delivers them over SMTP with per-message tracking.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
