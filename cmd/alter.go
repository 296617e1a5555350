package cmd

import (
	"github.com/entolab/bugtally/core"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/spf13/cobra"
)

// alterCmd replaces one bug in an existing table.
var alterCmd = &cobra.Command{
	Use:   "alter <csv-file> <dat-file>",
	Short: "Replace one bug in an existing CSV table with a record file.",
	Long: `Load an existing table and swap in the contents of a single record file.

The bug named by the record file gets exactly the observations listed in
that file. Its previous observations are discarded, not merged, so a region
missing from the record file is dropped for that bug. A bug that is not in
the table yet is added as a new column.

Examples:
  # Refresh the Beetle column from a new survey
  bugtally alter bugs.csv beetle.dat

  # Write the updated table to a new file
  bugtally alter bugs.csv beetle.dat --output-file updated.csv`,
	Args: cobra.ExactArgs(2),
	PreRunE: sharedSetupWith(func(input *contract.ConfigRawInput, args []string) {
		input.TableFileStr = args[0]
		input.RecordFileStr = args[1]
	}),
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAlter(rootCtx, cfg, archiveManager); err != nil {
			contract.LogFatal("Cannot run alter", err)
		}
	},
}
