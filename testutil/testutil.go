package testutil

import (
	"math/rand"
	"sync"
)

// RNG is a seeded random source safe for use from several goroutines.
// Two RNGs with the same seed produce the same values.
type RNG struct {
	mu   sync.Mutex
	src  *rand.Rand
	seed int64
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Reset rewinds the RNG to the start of its sequence.
func (r *RNG) Reset() {
	r.locked(func(src *rand.Rand) { src.Seed(r.seed) })
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) (v int) {
	r.locked(func(src *rand.Rand) { v = src.Intn(n) })
	return v
}

// Ints returns n values in [0, upper).
func (r *RNG) Ints(n, upper int) []int {
	out := make([]int, n)
	r.locked(func(src *rand.Rand) {
		for i := range out {
			out[i] = src.Intn(upper)
		}
	})
	return out
}

// Float64s returns n values in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	out := make([]float64, n)
	r.locked(func(src *rand.Rand) {
		for i := range out {
			out[i] = src.Float64()
		}
	})
	return out
}

// IntGenerator returns a generator of values in [lo, hi], suitable for
// Array.Generate.
func (r *RNG) IntGenerator(lo, hi int) func() int {
	return func() int {
		return lo + r.Intn(hi-lo+1)
	}
}

func (r *RNG) locked(fn func(src *rand.Rand)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.src)
}

// Counter returns a generator yielding start, start+step, start+2*step, ...
func Counter(start, step int) func() int {
	next := start
	return func() int {
		v := next
		next += step
		return v
	}
}
