package cmd

import (
	"github.com/entolab/bugtally/core"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd scores each bug from coefficients and region weights.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <csv-file>",
	Short: "Score each bug from count coefficients and region weights.",
	Long: `Reduce a table to one risk score per bug.

Every observation contributes the product of its region weight and the
coefficient of its recorded value. Region weights come from the countries
file and default to zero for regions it does not list; coefficients come
from the count coefficients file and must cover every recorded value, so a
missing coefficient fails the command.

Both mapping files hold one "weight value" pair per line.

Examples:
  # Score all bugs in the table
  bugtally analyze bugs.csv --count-coefficients-file coefficients.txt --countries-file countries.txt

  # Ranked table with share labels
  bugtally analyze bugs.csv --count-coefficients-file coefficients.txt --countries-file countries.txt --output table

  # JSON for downstream tooling
  bugtally analyze bugs.csv --count-coefficients-file coefficients.txt --countries-file countries.txt --output json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		err := sharedSetup(rootCtx, cmd, args, func(input *contract.ConfigRawInput, args []string) {
			input.TableFileStr = args[0]
		})
		if err != nil {
			return err
		}
		// The mapping flags never have usable defaults, so check them here
		// instead of in the shared pipeline.
		return contract.RevalidateAnalyze(cfg)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, archiveManager); err != nil {
			contract.LogFatal("Cannot run analyze", err)
		}
	},
}
