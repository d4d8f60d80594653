package txrecord

import (
	"slices"
)

// Dedupe keeps the first group for every representative hash, preserving input order.
func Dedupe(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for g := range slices.Values(groups) {
		if len(g) == 0 {
			continue
		}
		hash := g.Hash()
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}
		out = append(out, g)
	}

	return out
}

// SortDescByTimestamp returns the groups ordered newest first. The sort is stable and
// groups with an unknown timestamp come after all others.
func SortDescByTimestamp(groups []Group) []Group {
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b Group) int {
		return a.Timestamp().Compare(b.Timestamp())
	})
	return out
}

// Merge flattens per-source batches, drops duplicate groups and sorts the result.
func Merge(batches ...[]Group) []Group {
	return SortDescByTimestamp(Dedupe(slices.Concat(batches...)))
}
