package quiz

import "sort"

// biasedShuffle returns a reordered copy of items by sorting with a random
// comparator. The resulting order is not a uniform permutation: elements tend
// to stay near their starting position. Question selection depends on this
// ordering, so it is kept as-is.
func biasedShuffle[T any](items []T, rnd RandomSource) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return rnd.Next() < 0.5
	})

	return out
}
