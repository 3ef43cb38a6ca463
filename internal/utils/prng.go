// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so that every random draw in a
// simulation comes from one reproducible source.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		seed: seed,
		rng:  rand.New(source),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseIndex picks a uniformly random index of a collection of length n in a
// single draw. It returns -1 for an empty collection and draws nothing.
func (s *PRNGService) ChooseIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}
