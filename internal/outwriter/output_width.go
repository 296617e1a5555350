package outwriter

import (
	"os"

	"github.com/entolab/bugtally/internal/contract"
	"golang.org/x/term"
)

// Space reserved for the fixed table columns (Rank, Value, Share, Label)
// with borders and padding.
const fixedColumnsWidth = 45

// getMaxKeyWidth calculates the maximum width for the key column in
// table output based on terminal width.
func getMaxKeyWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	available := termWidth - fixedColumnsWidth
	if available < 15 {
		// Minimum reasonable key width
		return 15
	}
	if available > 70 {
		// Maximum key width to prevent overly long rows
		return 70
	}
	return available
}
