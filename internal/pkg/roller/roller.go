// Package roller provides the random sources the dice pool rolls with.
// Every source satisfies the rpg-toolkit dice.Roller interface.
package roller

//go:generate mockgen -destination=mock/mock_roller.go -package=rollermock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/errors"
)

// Seeded is a deterministic roller backed by math/rand.
// Safe for concurrent use.
type Seeded struct {
	mu   sync.Mutex
	src  *rand.Rand
	seed int64
	pos  int64
}

// NewSeeded creates a roller that replays the same faces for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		src:  rand.New(rand.NewSource(seed)), // #nosec G404 -- reproducible game rolls
		seed: seed,
	}
}

// Ensure Seeded implements dice.Roller
var _ dice.Roller = (*Seeded)(nil)

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos++
	return s.src.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must be non-negative, got %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		out[i] = s.src.Intn(size) + 1
	}
	s.pos += int64(count)

	return out, nil
}

// Seed returns the seed the roller was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Position returns how many dice have been drawn
func (s *Seeded) Position() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// New returns a seeded roller, or the toolkit's default roller when seed is 0
func New(seed int64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeeded(seed)
}
