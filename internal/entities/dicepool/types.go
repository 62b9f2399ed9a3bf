// Package dicepool holds the core types of a six-sided exploding dice pool
package dicepool

import (
	"github.com/KirkDiggler/void-dice/internal/errors"
)

// Face values and the fixed face effect table
const (
	// Sides is the number of faces on every die in the pool
	Sides = 6

	// MinFace and MaxFace bound a rolled value
	MinFace = 1
	MaxFace = Sides

	// FuryFace adds one fury
	FuryFace = 1

	// EnergyThreshold is the lowest face that adds one energy
	EnergyThreshold = 2

	// ExplosionThreshold is the lowest face that spawns a bonus (void) die.
	// Faces 4 and up explode in one variant of the game; 5 is the documented rule.
	ExplosionThreshold = 5
)

// State is the dice pool owned by a single game session
type State struct {
	// Dice rolled fresh on every resolution
	BaseDice int `json:"base_dice"`

	// Running tally of bonus dice spawned by explosions. Never reset and
	// never re-rolled as base dice.
	VoidDice int `json:"void_dice"`

	// Reserved for fury mechanics; not consumed by resolution
	FuryDice int `json:"fury_dice"`
}

// Validate ensures every count is non-negative
func (s *State) Validate() error {
	if s == nil {
		return errors.InvalidArgument("pool state is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("base_dice", s.BaseDice, 0, vb)
	errors.ValidateMin("void_dice", s.VoidDice, 0, vb)
	errors.ValidateMin("fury_dice", s.FuryDice, 0, vb)

	return vb.Build()
}

// RollResult is everything one resolution produced
type RollResult struct {
	// All rolled values, sub-round by sub-round, each sub-round ascending
	Values []int `json:"values"`

	// Per-face counts, Sides entries per sub-round
	Faces []int `json:"faces"`

	Energy int `json:"energy"`
	Fury   int `json:"fury"`

	// Bonus dice spawned across all sub-rounds
	Spawned int `json:"spawned"`
}

// SubRounds returns how many sub-rounds the resolution ran
func (r *RollResult) SubRounds() int {
	return len(r.Faces) / Sides
}

// SubRoundFaces returns the per-face counts of sub-round i, indexed by face-1
func (r *RollResult) SubRoundFaces(i int) []int {
	if i < 0 || i >= r.SubRounds() {
		return nil
	}
	return r.Faces[i*Sides : (i+1)*Sides]
}

// SubRoundSize returns the number of dice rolled in sub-round i
func (r *RollResult) SubRoundSize(i int) int {
	total := 0
	for _, n := range r.SubRoundFaces(i) {
		total += n
	}
	return total
}

// BaseValues returns the values of the first sub-round
func (r *RollResult) BaseValues() []int {
	return r.Values[:r.SubRoundSize(0)]
}

// BonusValues returns the values rolled by exploded dice
func (r *RollResult) BonusValues() []int {
	return r.Values[r.SubRoundSize(0):]
}
