package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// printStatsText writes plain "key: value" lines, one per key, sorted by
// key name.
func printStatsText(stats map[string]int, cfg *contract.Config) error {
	return writeOut(cfg.OutputFile, "Wrote stats", func(w io.Writer) error {
		_, err := fmt.Fprintln(w, schema.FormatStats(stats, "\n"))
		return err
	})
}

// printStatsCSV writes the ranked stats as comma-delimited rows.
func printStatsCSV(results []schema.StatResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	return writeOut(cfg.OutputFile, "Wrote CSV stats", func(w io.Writer) error {
		return writeCSVStats(w, results, fmtFloat)
	})
}

// writeCSVStats writes the stats in CSV format.
func writeCSVStats(w io.Writer, results []schema.StatResult, fmtFloat func(float64) string) error {
	header := []string{"rank", "key", "value", "share", "label"}
	return writeCSVRows(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range schema.EnrichStats(results) {
			rec := []string{
				strconv.Itoa(r.Rank),
				r.Key,
				strconv.Itoa(r.Value),
				fmtFloat(r.Share),
				r.Label,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// printStatsJSON writes the enriched stats as an indented JSON array.
func printStatsJSON(results []schema.StatResult, cfg *contract.Config) error {
	return writeOut(cfg.OutputFile, "Wrote JSON stats", func(w io.Writer) error {
		return writeIndentedJSON(w, schema.EnrichStats(results))
	})
}

// printStatsTable writes the ranked stats as an aligned grid.
func printStatsTable(results []schema.StatResult, cfg *contract.Config) error {
	return writeOut(cfg.OutputFile, "Wrote table stats", func(w io.Writer) error {
		return writeStatsTable(w, results, cfg)
	})
}

// writeStatsTable generates and writes the human-readable table.
func writeStatsTable(w io.Writer, results []schema.StatResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	grid := tablewriter.NewWriter(w)
	grid.Header([]string{"Rank", "Key", "Value", "Share", "Label"})
	grid.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var label func(float64) string
	if cfg.UseColors {
		label = contract.GetColorLabel
	} else {
		label = schema.GetPlainLabel
	}

	maxWidth := getMaxKeyWidth(cfg)
	var data [][]string
	for _, r := range schema.EnrichStats(results) {
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateCell(r.Key, maxWidth),
			strconv.Itoa(r.Value),
			fmtFloat(r.Share),
			label(r.Share),
		}
		data = append(data, row)
	}

	if err := grid.Bulk(data); err != nil {
		return err
	}
	return grid.Render()
}
