package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobsearch/internal/companies"
	"github.com/jonathan/jobsearch/internal/config"
	"github.com/jonathan/jobsearch/internal/observability"
	"github.com/jonathan/jobsearch/internal/pipeline"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest company names from the built-in directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var pagesCmd = &cobra.Command{
	Use:   "career-pages <company>",
	Short: "Find likely career page URLs for a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runCareerPages,
}

var (
	suggestLimit int
	suggestJSON  bool
)

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 8, "Maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(pagesCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	suggestions := companies.Suggest(args[0], suggestLimit)

	if suggestJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}

	observability.NewPrinter(os.Stdout).PrintSuggestions(suggestions)
	return nil
}

func runCareerPages(_ *cobra.Command, args []string) error {
	var cfg config.Config
	searcher := pipeline.New(pipeline.DefaultRegistry(cfg.Credentials(), pipeline.RegistryOptions{}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pages, err := searcher.SuggestCareerPages(ctx, args[0])
	if err != nil {
		return fmt.Errorf("career page lookup failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintCareerPages(pages)
	return nil
}
