package outwriter

import (
	"encoding/json"
	"testing"

	"github.com/entolab/bugtally/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTableCSV(t *testing.T) {
	cfg := statsConfig(t, "")
	table := schema.BugTable{
		"Aphid":  {"France": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
	}

	require.NoError(t, PrintTable(table, cfg))

	assert.Equal(t, "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n", readOutput(t, cfg))
}

func TestPrintTableTextFallsBackToCSV(t *testing.T) {
	cfg := statsConfig(t, schema.TextOut)
	table := schema.BugTable{"Aphid": {"France": "1"}}

	require.NoError(t, PrintTable(table, cfg))

	assert.Equal(t, "Region;Aphid\nFrance;1\n", readOutput(t, cfg))
}

func TestPrintTableJSON(t *testing.T) {
	cfg := statsConfig(t, schema.JSONOut)
	table := schema.BugTable{
		"Aphid":  {"France": "1"},
		"Beetle": {"Italy": "3"},
	}

	require.NoError(t, PrintTable(table, cfg))

	var back schema.BugTable
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &back))
	assert.Equal(t, table, back)
}

func TestPrintTableGrid(t *testing.T) {
	cfg := statsConfig(t, schema.TableOut)
	table := schema.BugTable{
		"Aphid":  {"France": "1"},
		"Beetle": {"Italy": "3"},
	}

	require.NoError(t, PrintTable(table, cfg))

	out := readOutput(t, cfg)
	assert.Contains(t, out, "Region")
	assert.Contains(t, out, "Aphid")
	assert.Contains(t, out, "Beetle")
	assert.Contains(t, out, "France")
	// Beetle has no France value, so the grid carries a placeholder.
	assert.Contains(t, out, schema.MissingCell)
}

func TestPrintTableEmpty(t *testing.T) {
	cfg := statsConfig(t, "")

	require.NoError(t, PrintTable(schema.BugTable{}, cfg))

	assert.Equal(t, "Region\n", readOutput(t, cfg))
}
