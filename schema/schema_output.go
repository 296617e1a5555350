package schema

// StatResult is one aggregated key with its weighted total, as produced by
// the count and analyze reductions.
type StatResult struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// EnrichedStatResult adds presentation data to a StatResult.
type EnrichedStatResult struct {
	Rank  int     `json:"rank"`
	Share float64 `json:"share"`
	Label string  `json:"label"`
	StatResult
}

// GetPlainLabel returns a plain text label indicating the weight level
// based on the share of the total (0-100).
func GetPlainLabel(share float64) string {
	switch {
	case share >= 80:
		return "Critical"
	case share >= 60:
		return "High"
	case share >= 40:
		return "Moderate"
	default:
		return "Low"
	}
}

// EnrichStats adds rank, share of total and label to a list of stat results.
// The share of a result is its value as a percentage of the sum of all
// values; with a zero total every share is zero.
func EnrichStats(stats []StatResult) []EnrichedStatResult {
	var total int
	for _, s := range stats {
		total += s.Value
	}
	output := make([]EnrichedStatResult, len(stats))
	for i, s := range stats {
		var share float64
		if total != 0 {
			share = 100 * float64(s.Value) / float64(total)
		}
		output[i] = EnrichedStatResult{
			Rank:       i + 1,
			Share:      share,
			Label:      GetPlainLabel(share),
			StatResult: s,
		}
	}
	return output
}
