package outwriter

import (
	"testing"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxKeyWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal clamps to minimum", 50, 15},
		{"wide terminal clamps to maximum", 200, 70},
		{"medium terminal uses available space", 100, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxKeyWidth(cfg))
		})
	}
}
