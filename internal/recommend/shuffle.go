package recommend

import (
	"math/rand/v2"
	"slices"
)

// shuffled returns a uniformly shuffled copy of src. The input slice is
// never mutated.
func shuffled[T any](rng *rand.Rand, src []T) []T {
	out := slices.Clone(src)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// pick returns a uniformly random element of src, which must be non-empty.
func pick[T any](rng *rand.Rand, src []T) T {
	return src[rng.IntN(len(src))]
}
