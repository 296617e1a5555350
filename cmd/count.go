package cmd

import (
	"github.com/entolab/bugtally/core"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/spf13/cobra"
)

// countCmd reduces a table to weighted counts per region.
var countCmd = &cobra.Command{
	Use:   "count <csv-file> <frequencies-file>",
	Short: "Sum frequency weights per region across all bugs.",
	Long: `Reduce a table to one weighted count per region.

Every recorded value is looked up in the frequencies file, which holds one
"weight value" pair per line, and the weights are summed per region. A value
without a frequency counts as zero and is reported as a warning, so a partial
lookup file still produces a full result.

Regions are printed in sorted order, one "region: count" line at a time.
Use --output to render the same counts as csv, json or a table.

Examples:
  # Weighted counts per region
  bugtally count bugs.csv frequencies.txt

  # Ranked table with share labels
  bugtally count bugs.csv frequencies.txt --output table

  # Export counts for a spreadsheet
  bugtally count bugs.csv frequencies.txt --output csv --output-file counts.csv`,
	Args: cobra.ExactArgs(2),
	PreRunE: sharedSetupWith(func(input *contract.ConfigRawInput, args []string) {
		input.TableFileStr = args[0]
		input.FreqFileStr = args[1]
	}),
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCount(rootCtx, cfg, archiveManager); err != nil {
			contract.LogFatal("Cannot run count", err)
		}
	},
}
