package game

import "math/rand"

// RandRange returns a uniform random integer in [lo, hi], both inclusive.
func RandRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
