package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entolab/bugtally/schema"
	"github.com/fatih/color"
)

// Share band labels, matching the strings schema.GetPlainLabel emits.
const (
	CriticalValue = "Critical"
	HighValue     = "High"
	ModerateValue = "Moderate"
	LowValue      = "Low"
)

// Console colors for the share bands, hottest to coolest.
var (
	criticalColor = color.New(color.FgRed, color.Bold)
	highColor     = color.New(color.FgMagenta, color.Bold)
	moderateColor = color.New(color.FgYellow)
	lowColor      = color.New(color.FgCyan)
)

// GetColorLabel returns the share band label with console color applied.
// The band text comes from schema.GetPlainLabel so colored and plain
// output always agree on the wording.
func GetColorLabel(share float64) string {
	text := schema.GetPlainLabel(share)

	switch text {
	case CriticalValue:
		return criticalColor.Sprint(text)
	case HighValue:
		return highColor.Sprint(text)
	case ModerateValue:
		return moderateColor.Sprint(text)
	default:
		return lowColor.Sprint(text)
	}
}

// SelectOutputFile opens filePath for writing, or hands back os.Stdout
// when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal reports an unrecoverable error on stderr and exits with status 1.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn reports a recoverable problem on stderr and keeps going.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetArchiveDBFilePath returns the default SQLite location for the run
// archive, falling back to the working directory when the home directory
// cannot be resolved.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bugtally_archive.db"
	}
	return filepath.Join(homeDir, ".bugtally_archive.db")
}

// TruncateCell shortens a table cell to maxWidth runes, keeping the tail
// behind a "..." prefix. Widths of 3 or less leave the cell alone since
// there would be no room for content after the prefix.
func TruncateCell(cell string, maxWidth int) string {
	runes := []rune(cell)
	if len(runes) <= maxWidth || maxWidth <= 3 {
		return cell
	}
	return "..." + string(runes[len(runes)-maxWidth+3:])
}

// ParseBoolString parses yes/no style flag values. Accepted inputs are
// "yes", "no", "true", "false", "1" and "0" in any case.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string %q (want yes/no/true/false/1/0)", s)
	}
}
