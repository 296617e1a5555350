package schema_test

import (
	"testing"

	"github.com/entolab/bugtally/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		share    float64
		expected string
	}{
		{"Critical Share Upper", 100.0, "Critical"},
		{"Critical Share Lower", 80.0, "Critical"},
		{"High Share Upper", 79.9, "High"},
		{"High Share Lower", 60.0, "High"},
		{"Moderate Share Upper", 59.9, "Moderate"},
		{"Moderate Share Lower", 40.0, "Moderate"},
		{"Low Share Upper", 39.9, "Low"},
		{"Low Share Lower", 0.0, "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := schema.GetPlainLabel(tt.share)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnrichStats(t *testing.T) {
	stats := []schema.StatResult{
		{Key: "France", Value: 85},
		{Key: "Italy", Value: 10},
		{Key: "Spain", Value: 5},
	}

	enriched := schema.EnrichStats(stats)

	assert.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "France", enriched[0].Key)
	assert.InDelta(t, 85.0, enriched[0].Share, 0.001)
	assert.Equal(t, "Critical", enriched[0].Label)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.InDelta(t, 10.0, enriched[1].Share, 0.001)
	assert.Equal(t, "Low", enriched[1].Label)

	assert.Equal(t, 3, enriched[2].Rank)
	assert.InDelta(t, 5.0, enriched[2].Share, 0.001)
	assert.Equal(t, "Low", enriched[2].Label)
}

func TestEnrichStatsZeroTotal(t *testing.T) {
	stats := []schema.StatResult{
		{Key: "France", Value: 0},
		{Key: "Italy", Value: 0},
	}

	enriched := schema.EnrichStats(stats)

	assert.Len(t, enriched, 2)
	for _, e := range enriched {
		assert.Zero(t, e.Share)
		assert.Equal(t, "Low", e.Label)
	}
}
