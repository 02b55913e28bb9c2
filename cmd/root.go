package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curator",
		Short: "Art history dataset tool with LLM-powered artwork generation",
		Long: `Curator builds and maintains art history survey datasets using LLMs.

It fills per-category quotas with deduplicated artwork records, validates
and reports on the results, and enriches records with Wikimedia image links.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newDatasetCmd())

	return cmd
}
