// Package testutils provides shared test fixtures and fakes
package testutils

import (
	"time"

	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
)

// DefaultBaseDice matches the starting pool of a new game
const DefaultBaseDice = 5

// FixedTime is the instant returned by FixedClock
var FixedTime = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

// FixedClock is a clock.Clock that always returns the same instant
// unless advanced.
type FixedClock struct {
	At time.Time
}

// NewFixedClock returns a clock stopped at FixedTime
func NewFixedClock() *FixedClock {
	return &FixedClock{At: FixedTime}
}

// Now returns the stopped instant
func (c *FixedClock) Now() time.Time {
	return c.At
}

// Advance moves the clock forward
func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}

// CreateTestPool creates a pool state with sensible defaults
func CreateTestPool() *dicepool.State {
	return &dicepool.State{
		BaseDice: DefaultBaseDice,
	}
}

// FirstSubRoundFaces is a base roll of one of each face except 6.
// Under the 5+ explosion rule it spawns a single bonus die.
func FirstSubRoundFaces() []int {
	return []int{1, 2, 3, 4, 5}
}
