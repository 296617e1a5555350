package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBugTableBugs(t *testing.T) {
	table := BugTable{
		"Weevil": {"France": "1"},
		"Aphid":  {"Spain": "2"},
		"Beetle": {"Italy": "3"},
	}
	assert.Equal(t, []string{"Aphid", "Beetle", "Weevil"}, table.Bugs())
}

func TestBugTableRegions(t *testing.T) {
	table := BugTable{
		"Aphid":  {"France": "1", "Spain": "1"},
		"Beetle": {"Italy": "3", "France": "2"},
	}
	assert.Equal(t, []string{"France", "Italy", "Spain"}, table.Regions())
}

func TestBugTableRegionsEmpty(t *testing.T) {
	assert.Empty(t, BugTable{}.Regions())
	assert.Empty(t, BugTable{}.Bugs())
}
