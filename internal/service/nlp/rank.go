package nlp

import "sort"

// Rank returns the top limit distinct tokens by frequency. keep, when
// non-nil, filters candidate tokens before counting. Frequency ties break
// by first occurrence, so ranking is deterministic for a given input.
// Fewer than limit qualifying tokens yields a shorter list, never padding.
func Rank(tokens []string, keep func(string) bool, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var ranked []string

	for i, t := range tokens {
		if keep != nil && !keep(t) {
			continue
		}
		if _, seen := counts[t]; !seen {
			firstSeen[t] = i
			ranked = append(ranked, t)
		}
		counts[t]++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
