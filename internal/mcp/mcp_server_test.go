package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/entolab/bugtally/internal/archive"
	"github.com/entolab/bugtally/internal/contract"
	mcp_internal "github.com/entolab/bugtally/internal/mcp"
	"github.com/entolab/bugtally/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture creates one fixture file and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Delimiter: ';',
	}

	// A nil manager is fine here because validation fails before any tracking
	var mgr contract.ArchiveManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("count_bugs missing frequencies_file", func(t *testing.T) {
		tool := s.GetTool("count_bugs")
		require.NotNil(t, tool, "Tool count_bugs should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "count_bugs",
				Arguments: map[string]any{
					"table_file": "bugs.csv",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "a frequencies file path is required")
	})

	t.Run("analyze_bugs missing count_coefficients_file", func(t *testing.T) {
		tool := s.GetTool("analyze_bugs")
		require.NotNil(t, tool, "Tool analyze_bugs should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_bugs",
				Arguments: map[string]any{
					"table_file":     "bugs.csv",
					"countries_file": "countries.txt",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "--count-coefficients-file is required")
	})

	t.Run("read_table missing table_file", func(t *testing.T) {
		tool := s.GetTool("read_table")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "read_table",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "a table file path is required")
	})

	t.Run("read_table invalid delimiter", func(t *testing.T) {
		tool := s.GetTool("read_table")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "read_table",
				Arguments: map[string]any{
					"table_file": "bugs.csv",
					"delimiter":  "||",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "delimiter must be a single character")
	})
}

func TestMCPServerHandlers_CountSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	tablePath := writeFixture(t, tmpDir, "bugs.csv", "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n")
	freqPath := writeFixture(t, tmpDir, "frequencies.txt", "5 1\n2 2\n4 3\n")

	baseCfg := &contract.Config{
		Delimiter: ';',
	}
	mockMgr := &archive.MockArchiveManager{}
	mockMgr.On("GetRunStore").Return(nil) // No run tracking for test

	s := mcp_internal.NewMCPServer(baseCfg, mockMgr)
	tool := s.GetTool("count_bugs")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "count_bugs",
			Arguments: map[string]any{
				"table_file":       tablePath,
				"frequencies_file": freqPath,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var enriched []schema.EnrichedStatResult
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &enriched))
	require.Len(t, enriched, 2)
	assert.Equal(t, "France", enriched[0].Key)
	assert.Equal(t, 5, enriched[0].Value)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Italy", enriched[1].Key)
	assert.Equal(t, 6, enriched[1].Value)
	assert.Equal(t, 2, enriched[1].Rank)
	mockMgr.AssertExpectations(t)
}

func TestMCPServerHandlers_ReadTableSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	tablePath := writeFixture(t, tmpDir, "bugs.csv", "Region;Aphid;Beetle\nFrance;1;-\nItaly;2;3\n")

	baseCfg := &contract.Config{
		Delimiter: ';',
	}
	mockMgr := &archive.MockArchiveManager{}

	s := mcp_internal.NewMCPServer(baseCfg, mockMgr)
	tool := s.GetTool("read_table")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "read_table",
			Arguments: map[string]any{
				"table_file": tablePath,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var table schema.BugTable
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &table))
	expected := schema.BugTable{
		"Aphid":  {"France": "1", "Italy": "2"},
		"Beetle": {"Italy": "3"},
	}
	assert.Equal(t, expected, table)
}
