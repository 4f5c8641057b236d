// Package cmd implements the CLI commands for mws-sync.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mws-sync",
	Short: "Mirror marketplace orders and reports into Postgres",
	Long: "mws-sync pulls orders from one or more seller accounts into Postgres on a " +
		"schedule, archives unacknowledged reports to S3, and serves the synced data " +
		"over an HTTP API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
