package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/entolab/bugtally/internal/contract"
)

// writeOut resolves the output sink, runs write against it and, for real
// files, confirms the save on stderr so piped stdout stays clean.
func writeOut(outputFile, doneMsg string, write func(io.Writer) error) error {
	sink, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := sink != os.Stdout
	if toFile {
		defer func() { _ = sink.Close() }()
	}

	if err := write(sink); err != nil {
		return err
	}
	if toFile {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", doneMsg, outputFile)
	}
	return nil
}

// writeIndentedJSON encodes data with two-space indentation.
func writeIndentedJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVRows writes a header row followed by whatever rows emits,
// flushing the csv.Writer before returning.
func writeCSVRows(w io.Writer, header []string, rows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return rows(cw)
}

// createFloatFormatter creates the share formatter closure used by the
// CSV and table stat writers.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
