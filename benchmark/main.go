// Package main provides a performance benchmarking tool for the bugtally CLI.
// It generates synthetic datasets of increasing size, measures execution times
// for the import, count and analyze commands with the run archive disabled and
// enabled, and writes CSV output for performance analysis and documentation.
//
// Prerequisites:
// - bugtally binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where datasets and archive databases are created
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-archive average,
// cold archive run and average of warm archive runs).
type BenchmarkResult struct {
	Dataset       string
	Command       string
	NoArchiveTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	NoArchiveRuns int
	ArchiveRuns   int
	Datasets      []DatasetSpec
}

// DatasetSpec describes one synthetic dataset to generate and benchmark.
type DatasetSpec struct {
	Name    string
	Bugs    int
	Regions int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:       workDir,
		Timeout:       2 * time.Minute,
		NoArchiveRuns: 3,
		ArchiveRuns:   4,
		Datasets: []DatasetSpec{
			{Name: "small", Bugs: 20, Regions: 10},
			{Name: "medium", Bugs: 200, Regions: 40},
			{Name: "large", Bugs: 2000, Regions: 80},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the bugtally binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if bugtally is available
	if _, err := exec.LookPath("bugtally"); err != nil {
		return fmt.Errorf("bugtally binary not found in PATH")
	}

	// Check that the work directory is usable
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// generateDataset writes record files and mapping files for one dataset spec.
// It returns the record directory, the mapping file paths and an error.
func generateDataset(config BenchmarkConfig, spec DatasetSpec) (datDir, freqFile, coeffFile, countriesFile string, err error) {
	base := filepath.Join(config.WorkDir, spec.Name)
	datDir = filepath.Join(base, "observations")
	if err = os.MkdirAll(datDir, 0o755); err != nil {
		return
	}

	// One record file per bug, one observation per region, values cycling 1..9
	for b := range spec.Bugs {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Bug%04d\n", b)
		for r := range spec.Regions {
			fmt.Fprintf(&sb, "%d: Region%03d\n", (b+r)%9+1, r)
		}
		name := filepath.Join(datDir, fmt.Sprintf("bug%04d.dat", b))
		if err = os.WriteFile(name, []byte(sb.String()), 0o644); err != nil {
			return
		}
	}

	// Frequencies and coefficients cover every value the records can hold
	var freqs, coeffs strings.Builder
	for v := 1; v <= 9; v++ {
		fmt.Fprintf(&freqs, "%d %d\n", v*2, v)
		fmt.Fprintf(&coeffs, "%d %d\n", v, v)
	}
	freqFile = filepath.Join(base, "frequencies.txt")
	if err = os.WriteFile(freqFile, []byte(freqs.String()), 0o644); err != nil {
		return
	}
	coeffFile = filepath.Join(base, "coefficients.txt")
	if err = os.WriteFile(coeffFile, []byte(coeffs.String()), 0o644); err != nil {
		return
	}

	// Region weights for every region in the dataset
	var countries strings.Builder
	for r := range spec.Regions {
		fmt.Fprintf(&countries, "%d Region%03d\n", r%5+1, r)
	}
	countriesFile = filepath.Join(base, "countries.txt")
	err = os.WriteFile(countriesFile, []byte(countries.String()), 0o644)
	return
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-archive: %d runs, archive: %d runs\n",
		len(config.Datasets), config.Timeout, config.NoArchiveRuns, config.ArchiveRuns)

	for _, spec := range config.Datasets {
		fmt.Printf("Benchmarking %s (%d bugs x %d regions)\n", spec.Name, spec.Bugs, spec.Regions)

		datDir, freqFile, coeffFile, countriesFile, err := generateDataset(config, spec)
		if err != nil {
			fmt.Printf("  Skipping %s: %v\n", spec.Name, err)
			continue
		}
		tableFile := filepath.Join(config.WorkDir, spec.Name, "bugs.csv")

		// Import builds the table the other commands read
		importArgs := []string{"import", datDir, "--output-file", tableFile}
		results = append(results, runBenchmarkSuite(config, spec.Name, "import", "table import", importArgs))

		countArgs := []string{"count", tableFile, freqFile}
		results = append(results, runBenchmarkSuite(config, spec.Name, "count", "weighted counts", countArgs))

		analyzeArgs := []string{
			"analyze", tableFile,
			"--count-coefficients-file", coeffFile,
			"--countries-file", countriesFile,
		}
		results = append(results, runBenchmarkSuite(config, spec.Name, "analyze", "risk scores", analyzeArgs))
	}

	return results
}

// runBenchmarkSuite runs both no-archive and archive benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, command, description string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	archiveDB := filepath.Join(config.WorkDir, dataset, "archive.db")

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, args, backend, archiveDB, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-archive runs
	_, noArchiveAvg := runPhase("none", config.NoArchiveRuns, "No-archive")

	// Phase 2: Archive runs; the first run creates the database
	_ = os.Remove(archiveDB)
	coldTime, warmAvg := runPhase("sqlite", config.ArchiveRuns, "Archive")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-archive average: %s, Cold time: %s, Warm average: %s\n", noArchiveAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:       dataset,
		Command:       command,
		NoArchiveTime: noArchiveAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a bugtally command multiple times with the specified
// archive backend and returns the cold time and warm times
func runBenchmark(config BenchmarkConfig, command string, args []string, backend, archiveDB string, numRuns int) (coldTime float64, warmTimes []float64) {
	fullArgs := append(append([]string{}, args...), "--archive-backend", backend)
	if backend == "sqlite" {
		fullArgs = append(fullArgs, "--archive-db-connect", archiveDB)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("bugtally", fullArgs...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	if strings.Contains(outputStr, "Fatal") {
		return false
	}
	if command == "import" {
		// Table lands in a file; stderr confirms the write
		return strings.Contains(outputStr, "Wrote CSV table")
	}
	// count/analyze print one "key: value" line per result
	return strings.Contains(outputStr, ":")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/bugtally_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_archive_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoArchiveTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "import", "Table Import:")
	printCommandSummary(results, "count", "Weighted Counts:")
	printCommandSummary(results, "analyze", "Risk Scores:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: No-archive: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoArchiveTime, result.ColdTime, result.WarmTime)
		}
	}
}
