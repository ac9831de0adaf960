// Package random provides the injectable random source used by world
// generation and particle emission. Every consumer receives a Source
// explicitly so a fixed seed reproduces a whole session.
package random

import (
	"math/rand/v2"
	"time"
)

// Source produces uniformly distributed values.
type Source interface {
	// Uniform returns a value in [min, max). When min == max it returns min;
	// reversed bounds are swapped.
	Uniform(min, max float64) float64
}

// Rand is a seeded PCG-backed Source. It is not safe for concurrent use;
// the simulation is single-threaded.
type Rand struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a deterministic source for the given seed.
func New(seed uint64) *Rand {
	return &Rand{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewFromTime seeds a source from the wall clock for interactive play.
func NewFromTime() *Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Uniform implements Source.
func (r *Rand) Uniform(min, max float64) float64 {
	if min == max {
		return min
	}
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}

// Split derives an independent child source. Each particle emitter gets its
// own child so adding an emitter does not shift the world-generation stream.
func (r *Rand) Split() *Rand {
	return New(r.rng.Uint64())
}

// Fixed is a Source that always returns the same fraction of the range.
// Tests use it to pin emission angles and positions.
type Fixed float64

// Uniform implements Source.
func (f Fixed) Uniform(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + float64(f)*(max-min)
}
