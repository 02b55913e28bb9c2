package datasetcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artatlas/curator/internal/dataset"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dataset to a parquet snapshot",
		Long: `Export the artworks of a dataset to a parquet file.

The snapshot carries the flattened record columns only; run metadata stays
in the JSON document. Parquet files can be loaded back with --input on any
other dataset command.`,
		Example: `  curator dataset export --input data/artworks-complete.json --output data/artworks.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", input)
			}
			return executeExport(input, output)
		},
	}

	cmd.Flags().StringVar(&input, "input", "data/artworks-complete.json", "Path to the dataset to export")
	cmd.Flags().StringVar(&output, "output", "data/artworks.parquet", "Path for the parquet snapshot")

	return cmd
}

func executeExport(input, output string) error {
	loader := dataset.NewLoader(input)
	records, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	if err := dataset.WriteParquet(output, records); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}

	fmt.Printf("✅ Exported %d artworks to %s\n", len(records), output)
	return nil
}
