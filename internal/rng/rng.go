// Package rng provides the injected random source used by every component
// that needs randomness, so simulations can be replayed from a seed.
package rng

import (
	"math/rand"
	"sync"
)

// Source is the subset of math/rand used by the engines.
type Source interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic Source for the given seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewLocked returns a deterministic Source safe for concurrent use, for
// wiring into request handlers.
func NewLocked(seed int64) Source {
	return &locked{r: rand.New(rand.NewSource(seed))}
}

type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// Jitter returns a uniform integer in [-spread, spread].
func Jitter(r Source, spread int) int {
	if spread <= 0 {
		return 0
	}
	return r.Intn(2*spread+1) - spread
}

// Between returns a uniform integer in [lo, hi].
func Between(r Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
