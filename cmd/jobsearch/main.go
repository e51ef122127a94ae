// Package main provides the entry point for the job search aggregator CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobsearch",
	Short: "Multi-source job listing aggregator",
	Long:  "jobsearch fans a company name out across job APIs, applicant tracking system boards, career pages, and scrapers, then merges the listings into one deduplicated result set.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
