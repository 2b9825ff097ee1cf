// Package selection derives the ordered item list for a quiz session from a
// bank: either the whole bank in order or a random sample of it.
package selection

import (
	"math/rand/v2"
	"slices"

	"github.com/rustquiz/rustquiz/internal/quiz"
)

// All returns every item in its original order. The result is a fresh slice,
// so a session built on it never aliases the bank.
func All(items []quiz.Item) []quiz.Item {
	return slices.Clone(items)
}

// RandomSubset returns min(count, len(items)) distinct items in shuffled
// order. items is not modified. A nil rng uses the global source.
func RandomSubset(items []quiz.Item, count int, rng *rand.Rand) []quiz.Item {
	n := min(count, len(items))
	if n <= 0 {
		return []quiz.Item{}
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(len(items))
	} else {
		perm = rand.Perm(len(items))
	}

	out := make([]quiz.Item, n)
	for i, idx := range perm[:n] {
		out[i] = items[idx]
	}
	return out
}
