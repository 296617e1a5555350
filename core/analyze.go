package core

import (
	"fmt"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/internal/tabio"
	"github.com/entolab/bugtally/schema"
)

// AnalyzeByBug computes a risk score per bug: the region's care weight
// times the value's count coefficient, summed over the bug's regions.
//
// A region absent from regionWeights weighs zero. A recorded value
// absent from coeffs is a fatal lookup failure; unlike the count policy,
// analyze refuses to produce a partial score.
func AnalyzeByBug(table schema.BugTable, coeffs, regionWeights schema.FrequencyMap) (Accumulator, error) {
	return Reduce(table, func(acc Accumulator, t schema.Triple) error {
		weight, ok := coeffs[t.Value]
		if !ok {
			return fmt.Errorf("no count coefficient for value %q ('%s' '%s')", t.Value, t.Bug, t.Region)
		}
		acc.Add(t.Bug, regionWeights[t.Region]*weight)
		return nil
	})
}

// loadAnalyzeStats reads the coefficient, countries and table files
// named by cfg and produces risk scores per bug.
func loadAnalyzeStats(cfg *contract.Config) (Accumulator, error) {
	coeffs, err := tabio.ReadMappingFile(cfg.CoeffFile)
	if err != nil {
		return nil, err
	}
	regionWeights, err := tabio.ReadMappingFile(cfg.CountriesFile)
	if err != nil {
		return nil, err
	}
	table, err := tabio.ReadTable(cfg.TableFile, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	return AnalyzeByBug(table, coeffs, regionWeights)
}

// GetAnalyzeResults computes risk scores per bug, sorted by bug name,
// for programmatic consumers like the MCP server.
func GetAnalyzeResults(cfg *contract.Config) ([]schema.StatResult, error) {
	scores, err := loadAnalyzeStats(cfg)
	if err != nil {
		return nil, err
	}
	return schema.SortStats(scores), nil
}
