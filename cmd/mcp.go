package cmd

import (
	"github.com/entolab/bugtally/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Bugtally MCP server",
	Long:  `Launch an MCP server that allows AI agents to query bug tables and statistics via standard tools.`,
	Args:  cobra.NoArgs,
	// No positionals to bind; tool calls carry their own file paths.
	PreRunE: sharedSetupWith(nil),
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, archiveManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
