package core

import (
	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/internal/tabio"
	"github.com/entolab/bugtally/schema"
)

// BuildImportTable parses every record file under cfg.DataDir and merges
// them into one table. Files are read in sorted name order, so when two
// files declare the same bug the later file wins.
func BuildImportTable(cfg *contract.Config) (schema.BugTable, error) {
	paths, err := tabio.ListRecordFiles(cfg.DataDir, cfg.RecordExt)
	if err != nil {
		return nil, err
	}

	table := schema.BugTable{}
	for _, path := range paths {
		name, regions, err := tabio.ReadRecordFile(path)
		if err != nil {
			return nil, err
		}
		table[name] = regions
	}
	return table, nil
}

// BuildAlteredTable reads an existing table and replaces one bug's entry
// with the contents of a single record file. The record's regions take
// over wholesale; the bug's old values are discarded.
func BuildAlteredTable(cfg *contract.Config) (schema.BugTable, error) {
	table, err := tabio.ReadTable(cfg.TableFile, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	name, regions, err := tabio.ReadRecordFile(cfg.RecordFile)
	if err != nil {
		return nil, err
	}
	table[name] = regions
	return table, nil
}

// GetTableResults loads a table file for programmatic consumers like the
// MCP server.
func GetTableResults(cfg *contract.Config) (schema.BugTable, error) {
	return tabio.ReadTable(cfg.TableFile, cfg.Delimiter)
}
