package quiz

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies the randomness used for shuffling and for choosing
// question types. Next returns a value in [0, 1).
type RandomSource interface {
	Next() float64
}

// seededSource is a RandomSource backed by math/rand.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSource returns a source seeded from the wall clock, for production use.
func NewTimeSeededSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

// Next implements RandomSource.
func (s *seededSource) Next() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
