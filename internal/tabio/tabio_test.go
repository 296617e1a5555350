package tabio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/entolab/bugtally/internal/tabio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecordFiles(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, filepath.Join(dir, "beetle.dat"), "Beetle\n")
	writeFileAt(t, filepath.Join(dir, "aphid.dat"), "Aphid\n")
	writeFileAt(t, filepath.Join(dir, "notes.txt"), "ignored\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.dat"), 0o755))

	paths, err := tabio.ListRecordFiles(dir, ".dat")
	require.NoError(t, err)

	// Sorted, extension-filtered, directories skipped.
	assert.Equal(t, []string{
		filepath.Join(dir, "aphid.dat"),
		filepath.Join(dir, "beetle.dat"),
	}, paths)
}

func TestListRecordFilesEmptyDir(t *testing.T) {
	paths, err := tabio.ListRecordFiles(t.TempDir(), ".dat")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestListRecordFilesMissingDir(t *testing.T) {
	_, err := tabio.ListRecordFiles(filepath.Join(t.TempDir(), "absent"), ".dat")
	assert.Error(t, err)
}
