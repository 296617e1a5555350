package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/entolab/bugtally/schema"
)

// ReadTable loads a delimited table file into a BugTable.
//
// The first row is the header: its first cell is ignored and the rest
// are bug names in column order. Each following row starts with a region
// name; a "-" cell means the bug has no value for that region and is
// skipped. Bugs whose every cell is "-" do not appear in the result.
func ReadTable(path string, delimiter rune) (schema.BugTable, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	reader := csv.NewReader(fd)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table %s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	bugs := header[1:]

	table := schema.BugTable{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table %s: %w", path, err)
		}
		region := row[0]
		cells := row[1:]
		for i, bug := range bugs {
			if i >= len(cells) {
				break
			}
			if cells[i] == schema.MissingCell {
				continue
			}
			if table[bug] == nil {
				table[bug] = schema.RegionMap{}
			}
			table[bug][region] = cells[i]
		}
	}
	return table, nil
}

// RenderTable serializes a BugTable to delimited text with one row per
// region and one column per bug. Missing (bug, region) pairs render as
// "-" cells. Bugs and regions are emitted in sorted order so the output
// is reproducible run to run.
func RenderTable(table schema.BugTable, delimiter rune) (string, error) {
	bugs := table.Bugs()
	regions := table.Regions()

	var buf strings.Builder
	writer := csv.NewWriter(&buf)
	writer.Comma = delimiter

	if err := writer.Write(append([]string{schema.RegionColumn}, bugs...)); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	row := make([]string, len(bugs)+1)
	for _, region := range regions {
		row[0] = region
		for i, bug := range bugs {
			cell := schema.MissingCell
			if value, ok := table[bug][region]; ok {
				cell = value
			}
			row[i+1] = cell
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("render table: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return buf.String(), nil
}
