// Package cli provides the command-line interface for the vacancies crawler.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/law-makers/vacancies/internal/app"
	"github.com/law-makers/vacancies/internal/config"
	"github.com/law-makers/vacancies/internal/ui"
)

// NewRootCmd builds the vacancies command. Without flags it performs the
// fixed crawl: Python vacancies from djinni.co into vacancies.csv.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacancies",
		Short: "Crawl Python vacancies from djinni.co into a CSV file",
		Long: `Vacancies walks every page of the djinni.co Python job listing, parses each
vacancy (title, company, technologies) and writes them to a CSV file.

The file is written only after the whole crawl succeeded; any failed request
or unexpected page layout aborts the run with a non-zero exit status.`,
		Example: `  # Crawl with the defaults (vacancies.csv, parser.log)
  vacancies

  # Write elsewhere and show progress
  vacancies --output=data/python.csv --progress`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCrawl,
	}

	config.RegisterFlags(cmd)
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer application.Close()

	if _, err := application.Run(cmd.Context()); err != nil {
		application.Logger.Error().Err(err).Msg("Crawl failed")
		return err
	}
	return nil
}
