package tabio_test

import (
	"path/filepath"
	"testing"

	"github.com/entolab/bugtally/internal/tabio"
	"github.com/entolab/bugtally/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	path := writeFile(t, "bugs.csv", "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n")

	table, err := tabio.ReadTable(path, ';')
	require.NoError(t, err)

	assert.Equal(t, schema.BugTable{
		"Aphid":  {"France": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
	}, table)
}

func TestReadTableAllDashColumn(t *testing.T) {
	path := writeFile(t, "bugs.csv", "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;-\n")

	table, err := tabio.ReadTable(path, ';')
	require.NoError(t, err)

	// A bug whose every cell is "-" never materializes.
	assert.NotContains(t, table, "Beetle")
	assert.Contains(t, table, "Aphid")
}

func TestReadTableCustomDelimiter(t *testing.T) {
	path := writeFile(t, "bugs.csv", "Region,Aphid\nSpain,5\n")

	table, err := tabio.ReadTable(path, ',')
	require.NoError(t, err)

	assert.Equal(t, schema.BugTable{"Aphid": {"Spain": "5"}}, table)
}

func TestReadTableShortRow(t *testing.T) {
	path := writeFile(t, "bugs.csv", "Region;Aphid;Beetle\nFrance;1\n")

	table, err := tabio.ReadTable(path, ';')
	require.NoError(t, err)

	assert.Equal(t, schema.BugTable{"Aphid": {"France": "1"}}, table)
}

func TestReadTableEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := tabio.ReadTable(path, ';')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestRenderTable(t *testing.T) {
	table := schema.BugTable{
		"Aphid":  {"France": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
	}

	out, err := tabio.RenderTable(table, ';')
	require.NoError(t, err)

	assert.Equal(t, "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n", out)
}

func TestRenderTableEmpty(t *testing.T) {
	out, err := tabio.RenderTable(schema.BugTable{}, ';')
	require.NoError(t, err)

	assert.Equal(t, "Region\n", out)
}

func TestRenderReadRoundTrip(t *testing.T) {
	table := schema.BugTable{
		"Aphid":  {"France": "1", "Spain": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
		"Weevil": {"Spain": "9", "Portugal": "4"},
	}

	out, err := tabio.RenderTable(table, ';')
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "round.csv")
	writeFileAt(t, path, out)

	back, err := tabio.ReadTable(path, ';')
	require.NoError(t, err)
	assert.Equal(t, table, back)
}
