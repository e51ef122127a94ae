package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobsearch/internal/config"
	"github.com/jonathan/jobsearch/internal/observability"
	"github.com/jonathan/jobsearch/internal/pipeline"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job listings for a company across all sources",
	Long: `Runs the staged provider fan-out for one company: the primary aggregator first, then free sources, then credentialed fallbacks, stopping as soon as concrete listings are found.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runSearch,
}

var (
	searchConfigPath string
	searchCompany    string
	searchMode       string
	searchTimeout    int
	searchJSON       bool
	searchVerbose    bool
)

func init() {
	// Config file flag (processed first)
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	searchCmd.Flags().StringVarP(&searchCompany, "company", "c", "", "Company name to search for")
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "Search mode: auto, quick, or deep")
	searchCmd.Flags().IntVar(&searchTimeout, "timeout", 0, "Overall search timeout in seconds")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the raw result as JSON instead of formatted output")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(searchCmd)
}

// resolveConfig loads the optional config file and applies CLI overrides
// on top of it. Shared by the search and serve commands.
func resolveConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// CLI flags take priority; only override when explicitly set
	if cmd.Flags().Changed("company") {
		cfg.Company = searchCompany
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = searchMode
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = searchTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = searchVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Mode:    "auto",
		Timeout: 120,
		Port:    8080,
	})

	return cfg, cfg.Validate()
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, searchConfigPath)
	if err != nil {
		return err
	}
	if cfg.Company == "" {
		return fmt.Errorf("--company is required (via flag or config)")
	}

	searcher := pipeline.New(pipeline.DefaultRegistry(cfg.Credentials(), pipeline.RegistryOptions{
		Deep: cfg.Mode == "deep",
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	result, err := searcher.SearchMode(ctx, cfg.Company, pipeline.Mode(cfg.Mode))
	if err != nil {
		return err
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSearchResult(result)
	if cfg.Verbose {
		printer.PrintProviderErrors(result.Errors)
	}
	return nil
}
