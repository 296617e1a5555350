package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		share float64
		want  string
	}{
		{"Critical", 90.0, CriticalValue},
		{"High", 65.0, HighValue},
		{"Moderate", 45.0, ModerateValue},
		{"Low", 10.0, LowValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Color codes may or may not be applied depending on TTY detection,
			// so only the label text is asserted.
			assert.Contains(t, GetColorLabel(tt.share), tt.want)
		})
	}
}

func TestSelectOutputFileStdout(t *testing.T) {
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file)
}

func TestSelectOutputFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	file, err := SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.NotEqual(t, os.Stdout, file)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		maxWidth int
		want     string
	}{
		{"short cell unchanged", "France", 20, "France"},
		{"exact width unchanged", "France", 6, "France"},
		{"long cell truncated", "a/very/long/region/name", 10, "...on/name"},
		{"tiny width unchanged", "France", 3, "France"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateCell(tt.cell, tt.maxWidth))
		})
	}
}

func TestGetArchiveDBFilePath(t *testing.T) {
	path := GetArchiveDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".bugtally_archive.db"))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"No", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
