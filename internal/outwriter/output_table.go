package outwriter

import (
	"io"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/internal/tabio"
	"github.com/entolab/bugtally/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// printTableCSV renders the table in its delimited on-disk format.
func printTableCSV(table schema.BugTable, cfg *contract.Config) error {
	text, err := tabio.RenderTable(table, cfg.Delimiter)
	if err != nil {
		return err
	}
	return writeOut(cfg.OutputFile, "Wrote CSV table", func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

// printTableJSON writes the bug-to-region mapping as indented JSON.
func printTableJSON(table schema.BugTable, cfg *contract.Config) error {
	return writeOut(cfg.OutputFile, "Wrote JSON table", func(w io.Writer) error {
		return writeIndentedJSON(w, table)
	})
}

// printTableGrid writes the table as an aligned grid.
func printTableGrid(table schema.BugTable, cfg *contract.Config) error {
	return writeOut(cfg.OutputFile, "Wrote table", func(w io.Writer) error {
		return writeTableGrid(w, table, cfg)
	})
}

// writeTableGrid generates and writes the human-readable grid, one row
// per region and one column per bug.
func writeTableGrid(w io.Writer, table schema.BugTable, cfg *contract.Config) error {
	bugs := table.Bugs()

	grid := tablewriter.NewWriter(w)
	grid.Header(append([]string{schema.RegionColumn}, bugs...))
	grid.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxKeyWidth(cfg)
	var data [][]string
	for _, region := range table.Regions() {
		row := make([]string, 0, len(bugs)+1)
		row = append(row, contract.TruncateCell(region, maxWidth))
		for _, bug := range bugs {
			cell := schema.MissingCell
			if value, ok := table[bug][region]; ok {
				cell = value
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	if err := grid.Bulk(data); err != nil {
		return err
	}
	return grid.Render()
}
