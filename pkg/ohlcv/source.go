package ohlcv

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniform random numbers. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a goroutine-safe PCG source. A zero seed draws the seed from runtime entropy.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Uniform returns a number in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
