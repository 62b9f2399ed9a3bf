// Package resolver turns a dice pool into a roll result, chaining bonus dice
// from explosions until a sub-round spawns none.
package resolver

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/engine/facebucket"
	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	"github.com/KirkDiggler/void-dice/internal/errors"
)

// Config holds the dependencies for a Resolver
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Resolver rolls dice pools. It holds no pool state of its own.
type Resolver struct {
	roller dice.Roller
}

// New creates a resolver that draws every face from cfg.Roller
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{roller: cfg.Roller}, nil
}

// Resolve rolls the pool's base dice and every bonus die they spawn.
//
// Each sub-round adds one energy per die showing EnergyThreshold or more and
// one fury per die showing FuryFace. Dice showing ExplosionThreshold or more
// spawn one bonus die each for the next sub-round and are added to
// pool.VoidDice. Only VoidDice is mutated, and only when Resolve succeeds.
//
// A die explodes with probability 1/3, so the loop ends with probability 1
// but has no fixed upper bound.
func (r *Resolver) Resolve(pool *dicepool.State) (*dicepool.RollResult, error) {
	if err := pool.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pool")
	}

	result := &dicepool.RollResult{
		Values: make([]int, 0, pool.BaseDice),
		Faces:  make([]int, 0, dicepool.Sides),
	}

	pending := pool.BaseDice
	for pending > 0 {
		summary, err := facebucket.Bucket(pending, r.roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll sub-round %d", result.SubRounds()+1)
		}

		result.Values = append(result.Values, summary.Values...)
		result.Faces = append(result.Faces, summary.Counts()...)
		result.Energy += summary.AtLeast(dicepool.EnergyThreshold)
		result.Fury += summary.Count(dicepool.FuryFace)

		spawned := summary.AtLeast(dicepool.ExplosionThreshold)
		result.Spawned += spawned
		pending = spawned
	}

	// applied once so a failed sub-round leaves the pool untouched
	pool.VoidDice += result.Spawned

	return result, nil
}
