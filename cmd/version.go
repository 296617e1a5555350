package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bugtally.",
	Long: `Display the build identity of this bugtally binary.

Shows the release version, git commit, build timestamp and Go runtime.
The --version flag prints the release version only; use this subcommand
when filing an issue or checking which build a machine is running.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("bugtally CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
