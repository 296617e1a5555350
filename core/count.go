package core

import (
	"fmt"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/internal/tabio"
	"github.com/entolab/bugtally/schema"
)

// CountByRegion sums frequency weights per region across all bugs.
//
// A recorded value missing from freqs is reported as a warning and
// contributes zero. The command keeps going; this tolerance is
// intentional and differs from the analyze policy.
func CountByRegion(table schema.BugTable, freqs schema.FrequencyMap) Accumulator {
	acc, _ := Reduce(table, func(acc Accumulator, t schema.Triple) error {
		weight, ok := freqs[t.Value]
		if !ok {
			contract.LogWarn(
				fmt.Sprintf("No frequency for '%s' '%s'", t.Bug, t.Region),
				fmt.Errorf("value %q is not in the lookup file", t.Value),
			)
		}
		acc.Add(t.Region, weight)
		return nil
	})
	return acc
}

// loadCountStats reads the frequency and table files named by cfg and
// produces weighted counts per region.
func loadCountStats(cfg *contract.Config) (Accumulator, error) {
	freqs, err := tabio.ReadMappingFile(cfg.FreqFile)
	if err != nil {
		return nil, err
	}
	table, err := tabio.ReadTable(cfg.TableFile, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	return CountByRegion(table, freqs), nil
}

// GetCountResults computes weighted counts per region, sorted by region
// name, for programmatic consumers like the MCP server.
func GetCountResults(cfg *contract.Config) ([]schema.StatResult, error) {
	counts, err := loadCountStats(cfg)
	if err != nil {
		return nil, err
	}
	return schema.SortStats(counts), nil
}
