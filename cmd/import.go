package cmd

import (
	"github.com/entolab/bugtally/core"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/spf13/cobra"
)

// importCmd builds a fresh table from a directory of record files.
var importCmd = &cobra.Command{
	Use:   "import <dat-dir>",
	Short: "Merge a directory of record files into one CSV table.",
	Long: `Read every record file in a directory and merge them into one table.

A record file names a bug on its first line and lists one observation per
following line, as "value: region". The merged table has one row per region
and one column per bug, with "-" marking pairs that were never observed.

Files are merged in sorted name order, so a bug recorded twice keeps the
observations of the last file that names it.

Examples:
  # Merge all .dat files under ./observations
  bugtally import ./observations

  # Write the table to a file instead of stdout
  bugtally import ./observations --output-file bugs.csv

  # Pick up .rec files and separate cells with commas
  bugtally import ./observations --ext .rec --delimiter ","

  # Render the table for reading instead of piping
  bugtally import ./observations --output table`,
	Args: cobra.ExactArgs(1),
	PreRunE: sharedSetupWith(func(input *contract.ConfigRawInput, args []string) {
		input.DataDirStr = args[0]
	}),
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteImport(rootCtx, cfg, archiveManager); err != nil {
			contract.LogFatal("Cannot run import", err)
		}
	},
}
