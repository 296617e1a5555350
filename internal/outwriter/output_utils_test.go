package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := writeOut(path, "Wrote test data", func(w io.Writer) error {
		_, err := w.Write([]byte("hello\n"))
		return err
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestWriteOutStdout(t *testing.T) {
	// Empty path selects stdout; the writer must still run without error.
	err := writeOut("", "Wrote test data", func(w io.Writer) error {
		return nil
	})
	assert.NoError(t, err)
}

func TestWriteIndentedJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIndentedJSON(&buf, map[string]int{"France": 7}))

	assert.Equal(t, "{\n  \"France\": 7\n}\n", buf.String())
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVRows(&buf, []string{"key", "value"}, func(w *csv.Writer) error {
		return w.Write([]string{"France", "7"})
	})
	require.NoError(t, err)

	assert.Equal(t, "key,value\nFrance,7\n", buf.String())
}

func TestCreateFloatFormatter(t *testing.T) {
	fmtOne := createFloatFormatter(1)
	fmtTwo := createFloatFormatter(2)

	assert.Equal(t, "33.3", fmtOne(33.333))
	assert.Equal(t, "33.33", fmtTwo(33.333))
}
