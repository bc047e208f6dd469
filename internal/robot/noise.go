package robot

import (
	"math/rand"
	"time"
)

// Source yields uniform samples in [0, 1). *rand.Rand satisfies it directly;
// tests can inject a fixed sequence instead of seeding a global generator.
type Source interface {
	Float64() float64
}

// NewSource returns a time-seeded source for interactive runs.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a deterministic source for reproducible runs.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
