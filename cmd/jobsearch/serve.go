package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobsearch/internal/pipeline"
	"github.com/jonathan/jobsearch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for searching job listings and browsing the company directory.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	searcher := pipeline.New(pipeline.DefaultRegistry(cfg.Credentials(), pipeline.RegistryOptions{}))

	srv := server.New(server.Config{
		Port:          cfg.Port,
		SearchTimeout: time.Duration(cfg.Timeout) * time.Second,
	}, searcher)

	return srv.Start()
}
