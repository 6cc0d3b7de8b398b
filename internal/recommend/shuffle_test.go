package recommend

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestShuffledDoesNotMutateSource(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := slices.Clone(src)

	shuffled(testRand(), src)

	if !slices.Equal(src, orig) {
		t.Errorf("source mutated: %v, want %v", src, orig)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	src := []string{"a", "b", "c", "d", "e"}

	out := shuffled(testRand(), src)

	if len(out) != len(src) {
		t.Fatalf("len = %d, want %d", len(out), len(src))
	}

	sortedOut := slices.Clone(out)
	sortedSrc := slices.Clone(src)
	slices.Sort(sortedOut)
	slices.Sort(sortedSrc)
	if !slices.Equal(sortedOut, sortedSrc) {
		t.Errorf("not a permutation: %v of %v", out, src)
	}
}

func TestShuffledDeterministicWithSeed(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := shuffled(testRand(), src)
	b := shuffled(testRand(), src)

	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different orders: %v vs %v", a, b)
	}
}

func TestShuffledCoversPositions(t *testing.T) {
	// Over many shuffles every element should appear in every position.
	// A biased shuffle (the classic off-by-one Fisher-Yates bug) fails this.
	src := []int{0, 1, 2, 3}
	rng := testRand()

	seen := make(map[[2]int]bool)
	for range 1000 {
		out := shuffled(rng, src)
		for pos, v := range out {
			seen[[2]int{v, pos}] = true
		}
	}

	for v := range 4 {
		for pos := range 4 {
			if !seen[[2]int{v, pos}] {
				t.Errorf("element %d never landed in position %d", v, pos)
			}
		}
	}
}

func TestPick(t *testing.T) {
	src := []string{"x", "y", "z"}
	rng := testRand()

	for range 100 {
		got := pick(rng, src)
		if !slices.Contains(src, got) {
			t.Fatalf("pick returned %q, not in source", got)
		}
	}
}
