// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
)

// PrintTable outputs a bug table, dispatching based on the output format
// configured. An empty output mode means CSV, the tool's native table
// interchange format; the text mode also falls back to CSV because a bug
// table has no plainer rendering.
func PrintTable(table schema.BugTable, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printTableJSON(table, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.TableOut:
		if err := printTableGrid(table, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	default:
		if err := printTableCSV(table, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	return nil
}

// PrintStats outputs command statistics, dispatching based on the output
// format configured. An empty output mode means plain "key: value" text.
func PrintStats(stats map[string]int, cfg *contract.Config) error {
	results := schema.SortStats(stats)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printStatsJSON(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printStatsCSV(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.TableOut:
		if err := printStatsTable(results, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	default:
		if err := printStatsText(stats, cfg); err != nil {
			return fmt.Errorf("error writing text output: %w", err)
		}
	}
	return nil
}
