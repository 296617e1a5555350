// Package core has the table building, reduction and scoring logic
// behind every bugtally command.
package core

import (
	"context"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing bugtally commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.ArchiveManager) error

// ExecuteImport merges every record file under cfg.DataDir into one
// table and prints it. It serves as the main entry point for the
// 'import' command.
func ExecuteImport(ctx context.Context, cfg *contract.Config, mgr contract.ArchiveManager) error {
	runID := beginRun(mgr, "import", cfg.DataDir, cfg)
	table, err := BuildImportTable(cfg)
	if err != nil {
		return err
	}
	if err := outwriter.PrintTable(table, cfg); err != nil {
		return err
	}
	finishRun(mgr, runID, len(table), nil)
	return nil
}

// ExecuteAlter replaces one bug in an existing table with the contents
// of a record file and prints the updated table.
func ExecuteAlter(ctx context.Context, cfg *contract.Config, mgr contract.ArchiveManager) error {
	runID := beginRun(mgr, "alter", cfg.TableFile, cfg)
	table, err := BuildAlteredTable(cfg)
	if err != nil {
		return err
	}
	if err := outwriter.PrintTable(table, cfg); err != nil {
		return err
	}
	finishRun(mgr, runID, len(table), nil)
	return nil
}

// ExecuteCount prints weighted bug counts per region.
func ExecuteCount(ctx context.Context, cfg *contract.Config, mgr contract.ArchiveManager) error {
	runID := beginRun(mgr, "count", cfg.TableFile, cfg)
	counts, err := loadCountStats(cfg)
	if err != nil {
		return err
	}
	if err := outwriter.PrintStats(counts, cfg); err != nil {
		return err
	}
	finishRun(mgr, runID, len(counts), counts)
	return nil
}

// ExecuteAnalyze prints risk scores per bug.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, mgr contract.ArchiveManager) error {
	runID := beginRun(mgr, "analyze", cfg.TableFile, cfg)
	scores, err := loadAnalyzeStats(cfg)
	if err != nil {
		return err
	}
	if err := outwriter.PrintStats(scores, cfg); err != nil {
		return err
	}
	finishRun(mgr, runID, len(scores), scores)
	return nil
}
