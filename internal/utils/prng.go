// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService is a thin wrapper over math/rand that lets the whole game
// share one seedable random source. Every component that rolls dice
// (particle spawns, glitch selection, terrain shape) takes it as a
// dependency, so tests can pass a fixed seed and get repeatable draws.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a random float in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Angle returns a random angle in [0, 2π) radians.
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Chance rolls a single probability check: true with probability p.
// p <= 0 never fires, p >= 1 always does.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
