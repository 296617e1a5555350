package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entolab/bugtally/core"
	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.ArchiveManager
}

// applyTableParams copies the shared table parameters from an MCP request
// into a cloned config. Returns an error result for an invalid delimiter.
func (h *toolHandler) applyTableParams(request mcp.CallToolRequest) (*contract.Config, *mcp.CallToolResult) {
	cfg := h.baseCfg.Clone()
	cfg.TableFile = request.GetString("table_file", "")
	if d := request.GetString("delimiter", ""); d != "" {
		runes := []rune(d)
		if len(runes) != 1 {
			return nil, mcp.NewToolResultError(fmt.Sprintf("delimiter must be a single character (received %q)", d))
		}
		cfg.Delimiter = runes[0]
	}
	return cfg, nil
}

func (h *toolHandler) handleCountBugs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errRes := h.applyTableParams(request)
	if errRes != nil {
		return errRes, nil
	}
	cfg.FreqFile = request.GetString("frequencies_file", "")

	if err := contract.RevalidateCount(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid count parameters: %v", err)), nil
	}

	stats, err := core.GetCountResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("count failed: %v", err)), nil
	}
	core.TrackRun(h.mgr, "count", cfg.TableFile, cfg, stats)

	enriched := schema.EnrichStats(stats)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeBugs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errRes := h.applyTableParams(request)
	if errRes != nil {
		return errRes, nil
	}
	cfg.CoeffFile = request.GetString("count_coefficients_file", "")
	cfg.CountriesFile = request.GetString("countries_file", "")

	if err := contract.RevalidateAnalyze(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analyze parameters: %v", err)), nil
	}

	stats, err := core.GetAnalyzeResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analyze failed: %v", err)), nil
	}
	core.TrackRun(h.mgr, "analyze", cfg.TableFile, cfg, stats)

	enriched := schema.EnrichStats(stats)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleReadTable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errRes := h.applyTableParams(request)
	if errRes != nil {
		return errRes, nil
	}

	if err := contract.RevalidateTable(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid table parameters: %v", err)), nil
	}

	table, err := core.GetTableResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("table read failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
