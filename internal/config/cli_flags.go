package config

import "github.com/spf13/cobra"

// RegisterFlags registers the optional CLI flags on the provided root command.
// Every flag defaults to the fixed crawl behaviour.
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().StringP("output", "o", DefaultOutputPath, "CSV file to write vacancies to")
	cmd.PersistentFlags().String("log-file", DefaultLogFile, "File receiving a copy of the log")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().String("timeout", "", "Per-request timeout, e.g. 30s (default: none)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().Bool("progress", false, "Show a progress bar on stderr")
}
