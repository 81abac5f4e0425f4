package simulator

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source handed to classifiers and composers.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// NewRand returns the goroutine-safe, runtime-seeded production source.
func NewRand() Rand {
	return globalRand{}
}

type seededRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRand returns a reproducible source, safe for concurrent use.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *seededRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](rng Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Chance reports true with probability p.
func Chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// FixedRand always returns the same values; IntN is capped at n-1.
// Used to pin randomised branches in tests and demos.
type FixedRand struct {
	Int   int
	Float float64
}

func (r FixedRand) IntN(n int) int {
	if r.Int >= n {
		return n - 1
	}
	return r.Int
}

func (r FixedRand) Float64() float64 { return r.Float }
