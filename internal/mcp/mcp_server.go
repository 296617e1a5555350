// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Bugtally MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.ArchiveManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Bugtally Aggregation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: count_bugs ---
	s.AddTool(mcp.NewTool("count_bugs",
		mcp.WithDescription("Count weighted bug observations per region from a CSV table and a frequency mapping."),
		mcp.WithString("table_file", mcp.Description("Path to the delimited CSV table produced by import."), mcp.Required()),
		mcp.WithString("frequencies_file", mcp.Description("Path to the frequency mapping file, one 'weight value' pair per line."), mcp.Required()),
		mcp.WithString("delimiter", mcp.Description("Cell delimiter used by the CSV table. Defaults to ';'.")),
	), h.handleCountBugs)

	// --- 2. Tool: analyze_bugs ---
	s.AddTool(mcp.NewTool("analyze_bugs",
		mcp.WithDescription("Score each bug by combining count coefficients with per-region weights."),
		mcp.WithString("table_file", mcp.Description("Path to the delimited CSV table produced by import."), mcp.Required()),
		mcp.WithString("count_coefficients_file", mcp.Description("Path to the count coefficient mapping file."), mcp.Required()),
		mcp.WithString("countries_file", mcp.Description("Path to the region weight mapping file."), mcp.Required()),
		mcp.WithString("delimiter", mcp.Description("Cell delimiter used by the CSV table. Defaults to ';'.")),
	), h.handleAnalyzeBugs)

	// --- 3. Tool: read_table ---
	s.AddTool(mcp.NewTool("read_table",
		mcp.WithDescription("Read a delimited CSV table back into its bug/region/value form."),
		mcp.WithString("table_file", mcp.Description("Path to the delimited CSV table produced by import."), mcp.Required()),
		mcp.WithString("delimiter", mcp.Description("Cell delimiter used by the CSV table. Defaults to ';'.")),
	), h.handleReadTable)

	return s
}

// StartMCPServer starts the Bugtally MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.ArchiveManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
