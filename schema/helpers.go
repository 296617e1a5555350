package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SortStats converts an accumulator map into a slice of stat results
// sorted lexicographically by key.
func SortStats(stats map[string]int) []StatResult {
	results := make([]StatResult, 0, len(stats))
	for key, value := range stats {
		results = append(results, StatResult{Key: key, Value: value})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

// FormatStats renders an accumulator as "key: value" entries joined by
// separator, with keys in sorted order.
func FormatStats(stats map[string]int, separator string) string {
	results := SortStats(stats)
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("%s: %d", r.Key, r.Value)
	}
	return strings.Join(parts, separator)
}
