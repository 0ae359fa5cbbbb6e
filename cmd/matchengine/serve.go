package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Samtech361/Jobupdates-cs-project/internal/config"
	"github.com/Samtech361/Jobupdates-cs-project/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for match scoring, skills-gap analysis, and resume analysis.`,
	RunE:  runServe,
}

var (
	servePort         int
	serveTaxonomyFile string
	serveConfigFile   string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTaxonomyFile, "taxonomy", "", "Path to custom taxonomy JSON file")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to config JSON file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if serveConfigFile != "" {
		cfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if serveTaxonomyFile == "" {
			serveTaxonomyFile = cfg.Taxonomy
		}
		if cfg.Port != 0 && servePort == 8080 {
			servePort = cfg.Port
		}
	}

	srv, err := server.New(server.Config{
		Port:         servePort,
		TaxonomyPath: serveTaxonomyFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
