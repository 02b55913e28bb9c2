package cmd

import (
	"github.com/artatlas/curator/internal/datasetcmd"
	"github.com/spf13/cobra"
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Artwork dataset tools",
		Long: `Tools for building and maintaining the artwork dataset.

Supports generating records with an LLM until category targets are met,
validating and reporting on dataset contents, inspecting individual
records, exporting parquet snapshots, and enriching records with
Wikimedia Commons image links.`,
	}

	// Add dataset subcommands
	cmd.AddCommand(datasetcmd.NewGenerateCmd())
	cmd.AddCommand(datasetcmd.NewValidateCmd())
	cmd.AddCommand(datasetcmd.NewReportCmd())
	cmd.AddCommand(datasetcmd.NewInspectCmd())
	cmd.AddCommand(datasetcmd.NewExportCmd())
	cmd.AddCommand(datasetcmd.NewEnrichCmd())

	return cmd
}
