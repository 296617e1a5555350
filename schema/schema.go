// Package schema has configs, models and shared helpers for all parts of bugtally.
package schema

import "sort"

// RegionMap maps a region name to the code recorded for one bug in that region.
type RegionMap map[string]string

// BugTable maps a bug name to its per-region codes. It is the unit that
// record files and CSV tables are parsed into and rendered from.
type BugTable map[string]RegionMap

// FrequencyMap maps a recorded code to its integer weight. Loaded once per
// invocation from a mapping file and read-only afterward.
type FrequencyMap map[string]int

// Triple is a single flattened (bug, region, value) observation.
type Triple struct {
	Bug    string
	Region string
	Value  string
}

// Bugs returns all bug names in the table, sorted lexicographically.
func (t BugTable) Bugs() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Regions returns the union of all region names across all bugs,
// sorted lexicographically.
func (t BugTable) Regions() []string {
	seen := make(map[string]struct{})
	for _, regions := range t {
		for region := range regions {
			seen[region] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for region := range seen {
		names = append(names, region)
	}
	sort.Strings(names)
	return names
}
