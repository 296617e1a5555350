package core

import (
	"sort"

	"github.com/entolab/bugtally/schema"
)

// Accumulator collects integer totals keyed by group. Absent keys count
// as zero, so callers can add to any key without seeding it first.
type Accumulator map[string]int

// Add increases the total for key by delta.
func (a Accumulator) Add(key string, delta int) {
	a[key] += delta
}

// ReduceFunc folds one (bug, region, value) triple into the accumulator.
// Returning an error aborts the whole reduction.
type ReduceFunc func(acc Accumulator, t schema.Triple) error

// Flatten expands a table into (bug, region, value) triples, ordered by
// bug name and then region name so downstream output and warnings are
// deterministic.
func Flatten(table schema.BugTable) []schema.Triple {
	total := 0
	for _, regions := range table {
		total += len(regions)
	}

	triples := make([]schema.Triple, 0, total)
	for _, bug := range table.Bugs() {
		regions := table[bug]
		names := make([]string, 0, len(regions))
		for region := range regions {
			names = append(names, region)
		}
		sort.Strings(names)
		for _, region := range names {
			triples = append(triples, schema.Triple{Bug: bug, Region: region, Value: regions[region]})
		}
	}
	return triples
}

// Reduce folds every triple of the table through fn, left to right,
// starting from an empty accumulator.
func Reduce(table schema.BugTable, fn ReduceFunc) (Accumulator, error) {
	acc := Accumulator{}
	for _, triple := range Flatten(table) {
		if err := fn(acc, triple); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
