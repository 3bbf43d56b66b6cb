// Package sampler provides the gonum-backed MetricSampler used for the
// placeholder analysis figures. A fixed seed makes every run reproducible,
// which the tests rely on; production wiring seeds from the clock unless
// SAMPLER_SEED pins it.
package sampler

import (
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"coanalyst/ports"
)

// Gonum draws placeholder metrics from gonum's distributions over a single
// seeded source. The mutex serializes draws; rand.Rand is not safe for
// concurrent use.
type Gonum struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a sampler seeded deterministically
func New(seed uint64) *Gonum {
	return &Gonum{rng: rand.New(rand.NewSource(seed))}
}

// UniformIn draws uniformly from [lo, hi). Degenerate bounds return lo.
func (g *Gonum) UniformIn(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return distuv.Uniform{Min: lo, Max: hi, Src: g.rng}.Rand()
}

// NormalAround draws from N(mean, sd). A non-positive sd returns the mean.
func (g *Gonum) NormalAround(mean, sd float64) float64 {
	if sd <= 0 {
		return mean
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return distuv.Normal{Mu: mean, Sigma: sd, Src: g.rng}.Rand()
}

// IntBetween draws an integer uniformly from [lo, hi). Degenerate bounds
// return lo.
func (g *Gonum) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Intn(hi-lo)
}

var _ ports.MetricSampler = (*Gonum)(nil)
