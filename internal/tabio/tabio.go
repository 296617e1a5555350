// Package tabio reads and writes the flat-file formats of bugtally:
// record files, lookup files and delimited CSV tables.
package tabio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListRecordFiles returns the record files directly under dir, sorted by
// name. The scan is non-recursive and matches on the file extension only.
func ListRecordFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list record files: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
