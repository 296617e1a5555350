package core

import (
	"path/filepath"
	"testing"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountByRegion tests frequency-weighted counts grouped by region.
func TestCountByRegion(t *testing.T) {
	table := schema.BugTable{
		"Aphid":  {"France": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
	}
	freqs := schema.FrequencyMap{"1": 5, "2": 2, "3": 4}

	counts := CountByRegion(table, freqs)

	assert.Equal(t, Accumulator{"France": 5, "Italy": 6}, counts)
}

// TestCountByRegionMissingFrequency tests the tolerant lookup policy:
// an unknown value is warned about and contributes zero.
func TestCountByRegionMissingFrequency(t *testing.T) {
	table := schema.BugTable{
		"Aphid":  {"France": "9"},
		"Beetle": {"Italy": "3"},
	}
	freqs := schema.FrequencyMap{"3": 4}

	counts := CountByRegion(table, freqs)

	assert.Equal(t, Accumulator{"France": 0, "Italy": 4}, counts)
}

func TestCountByRegionEmptyTable(t *testing.T) {
	counts := CountByRegion(schema.BugTable{}, schema.FrequencyMap{"1": 5})
	assert.Empty(t, counts)
}

// TestGetCountResults tests the file-backed count pipeline.
func TestGetCountResults(t *testing.T) {
	tmpDir := t.TempDir()
	tablePath := writeTestFile(t, tmpDir, "bugs.csv", "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n")
	freqPath := writeTestFile(t, tmpDir, "frequencies.txt", "5 1\n2 2\n4 3\n")

	cfg := &contract.Config{TableFile: tablePath, FreqFile: freqPath, Delimiter: ';'}

	results, err := GetCountResults(cfg)
	require.NoError(t, err)

	expected := []schema.StatResult{
		{Key: "France", Value: 5},
		{Key: "Italy", Value: 6},
	}
	assert.Equal(t, expected, results)
}

func TestGetCountResultsMissingFreqFile(t *testing.T) {
	tmpDir := t.TempDir()
	tablePath := writeTestFile(t, tmpDir, "bugs.csv", "Region;Aphid\nFrance;1\n")

	cfg := &contract.Config{
		TableFile: tablePath,
		FreqFile:  filepath.Join(tmpDir, "absent.txt"),
		Delimiter: ';',
	}

	_, err := GetCountResults(cfg)
	assert.Error(t, err)
}

func TestGetCountResultsMissingTableFile(t *testing.T) {
	tmpDir := t.TempDir()
	freqPath := writeTestFile(t, tmpDir, "frequencies.txt", "5 1\n")

	cfg := &contract.Config{
		TableFile: filepath.Join(tmpDir, "absent.csv"),
		FreqFile:  freqPath,
		Delimiter: ';',
	}

	_, err := GetCountResults(cfg)
	assert.Error(t, err)
}

func TestGetCountResultsMalformedFreqFile(t *testing.T) {
	tmpDir := t.TempDir()
	tablePath := writeTestFile(t, tmpDir, "bugs.csv", "Region;Aphid\nFrance;1\n")
	freqPath := writeTestFile(t, tmpDir, "frequencies.txt", "not a mapping line\n")

	cfg := &contract.Config{TableFile: tablePath, FreqFile: freqPath, Delimiter: ';'}

	_, err := GetCountResults(cfg)
	assert.Error(t, err)
}
