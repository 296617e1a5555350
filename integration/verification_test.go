//go:build basic

// Package integration contains integration tests for bugtally.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBugtally executes the shared binary in workDir and returns its stdout.
func runBugtally(t *testing.T, workDir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(bugtallyBinary(), args...)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "bugtally %s failed: %s", strings.Join(args, " "), stderr.String())
	return stdout.String()
}

// writeFile creates a fixture file, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// parseStatsOutput extracts keys and values from "key: value" stat lines.
func parseStatsOutput(output string) map[string]int {
	stats := make(map[string]int)
	for _, line := range strings.Split(output, "\n") {
		key, valueStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil && key != "" {
			stats[key] = value
		}
	}
	return stats
}

// TestPipelineRoundTrip drives import, alter, count and analyze through the
// CLI and checks each product against hand-computed expectations.
func TestPipelineRoundTrip(t *testing.T) {
	workDir := t.TempDir()
	datDir := filepath.Join(workDir, "records")
	require.NoError(t, os.Mkdir(datDir, 0o755))

	writeFile(t, filepath.Join(datDir, "aphid.dat"), "Aphid\n1: France\n2: Italy\n")
	writeFile(t, filepath.Join(datDir, "beetle.dat"), "Beetle\n3: Italy\n")

	tablePath := filepath.Join(workDir, "table.csv")
	runBugtally(t, workDir, "import", datDir, "--output-file", tablePath)

	content, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n", string(content))

	// Alter replaces the bug's observations wholesale, so France gains a
	// Beetle value and Italy loses one.
	patchPath := filepath.Join(workDir, "patch.dat")
	writeFile(t, patchPath, "Beetle\n9: France\n")
	alteredPath := filepath.Join(workDir, "altered.csv")
	runBugtally(t, workDir, "alter", tablePath, patchPath, "--output-file", alteredPath)

	content, err = os.ReadFile(alteredPath)
	require.NoError(t, err)
	assert.Equal(t, "Region;Aphid;Beetle\nFrance;1;9\nItaly;2;-\n", string(content))

	freqPath := filepath.Join(workDir, "frequencies.txt")
	writeFile(t, freqPath, "5 1\n2 2\n4 3\n")
	countOut := runBugtally(t, workDir, "count", tablePath, freqPath)
	assert.Equal(t, "France: 5\nItaly: 6\n", countOut)

	coeffPath := filepath.Join(workDir, "coefficients.txt")
	writeFile(t, coeffPath, "1 1\n2 2\n3 3\n")
	countriesPath := filepath.Join(workDir, "countries.txt")
	writeFile(t, countriesPath, "2 France\n3 Italy\n")
	analyzeOut := runBugtally(t, workDir, "analyze", tablePath,
		"--count-coefficients-file", coeffPath, "--countries-file", countriesPath)
	assert.Equal(t, "Aphid: 8\nBeetle: 9\n", analyzeOut)
}

// TestCountVerification builds a synthetic dataset, runs the import and
// count pipeline, and verifies every region total against sums recomputed
// directly from the record data.
func TestCountVerification(t *testing.T) {
	workDir := t.TempDir()
	datDir := filepath.Join(workDir, "records")
	require.NoError(t, os.Mkdir(datDir, 0o755))

	// Weight table for values 1..9.
	weights := make(map[int]int)
	var freqLines strings.Builder
	for v := 1; v <= 9; v++ {
		weights[v] = v * 2
		fmt.Fprintf(&freqLines, "%d %d\n", weights[v], v)
	}
	freqPath := filepath.Join(workDir, "frequencies.txt")
	writeFile(t, freqPath, freqLines.String())

	// Spread deterministic values over 12 bugs and 7 regions, leaving
	// holes so some cells stay missing.
	expected := make(map[string]int)
	for b := 0; b < 12; b++ {
		var record strings.Builder
		fmt.Fprintf(&record, "Bug%02d\n", b)
		for r := 0; r < 7; r++ {
			if (b+r)%3 == 0 {
				continue
			}
			value := (b*r)%9 + 1
			region := fmt.Sprintf("Region%02d", r)
			fmt.Fprintf(&record, "%d: %s\n", value, region)
			expected[region] += weights[value]
		}
		writeFile(t, filepath.Join(datDir, fmt.Sprintf("bug%02d.dat", b)), record.String())
	}

	tablePath := filepath.Join(workDir, "table.csv")
	runBugtally(t, workDir, "import", datDir, "--output-file", tablePath)
	countOut := runBugtally(t, workDir, "count", tablePath, freqPath)

	counts := parseStatsOutput(countOut)
	require.Len(t, counts, len(expected))
	for region, want := range expected {
		t.Run(region, func(t *testing.T) {
			assert.Equal(t, want, counts[region],
				"weighted count mismatch for %s", region)
		})
	}
}

// TestCountMissingTableFails ensures a bad table path surfaces as a
// non-zero exit with a fatal message.
func TestCountMissingTableFails(t *testing.T) {
	workDir := t.TempDir()
	freqPath := filepath.Join(workDir, "frequencies.txt")
	writeFile(t, freqPath, "1 1\n")

	cmd := exec.Command(bugtallyBinary(), "count", filepath.Join(workDir, "absent.csv"), freqPath)
	cmd.Dir = workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Cannot run count")
}

// TestVersionOutput checks both version surfaces of the CLI.
func TestVersionOutput(t *testing.T) {
	flagOut := runBugtally(t, t.TempDir(), "--version")
	assert.Contains(t, flagOut, "version")

	cmdOut := runBugtally(t, t.TempDir(), "version")
	assert.Contains(t, cmdOut, "bugtally CLI")
	assert.Contains(t, cmdOut, "Runtime:")
}
