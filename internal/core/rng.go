package core

import "math/rand"

// RNG is the random source games draw from. Both bounds are inclusive.
type RNG interface {
	UniformInt(min, max int) int
	UniformFloat(min, max float64) float64
}

// SeededRNG is an RNG backed by math/rand with an explicit seed, so that
// a run can be replayed exactly.
type SeededRNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG for the given seed.
func NewRNG(seed int64) *SeededRNG {
	return &SeededRNG{r: rand.New(rand.NewSource(seed))}
}

// UniformInt returns an integer in [min, max]. Swapped bounds are reordered.
func (s *SeededRNG) UniformInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if max == min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// UniformFloat returns a float in [min, max].
func (s *SeededRNG) UniformFloat(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Float64()*(max-min)
}
