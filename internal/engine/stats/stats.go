// Package stats summarizes many resolutions of the same pool
package stats

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/engine/resolver"
	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	"github.com/KirkDiggler/void-dice/internal/errors"
)

// MaxRuns bounds a single simulation
const MaxRuns = 1_000_000

// SimulateInput defines a simulation request
type SimulateInput struct {
	BaseDice int
	Runs     int
	Roller   dice.Roller
}

// Summary aggregates a simulation
type Summary struct {
	Runs     int `json:"runs"`
	BaseDice int `json:"base_dice"`

	MeanEnergy     float64 `json:"mean_energy"`
	MeanFury       float64 `json:"mean_fury"`
	MeanDiceRolled float64 `json:"mean_dice_rolled"`
	MeanSubRounds  float64 `json:"mean_sub_rounds"`

	MaxDiceRolled int `json:"max_dice_rolled"`
	MaxSubRounds  int `json:"max_sub_rounds"`

	// Share of all rolled dice that exploded
	ExplosionRate float64 `json:"explosion_rate"`

	// Face frequencies over every rolled die, indexed by face-1
	FaceTotals []int `json:"face_totals"`

	// Void tally of the simulated pool after every run
	VoidDice int `json:"void_dice"`
}

// Simulate resolves a fresh pool of input.BaseDice input.Runs times.
// The void tally carries across runs like it would in a session.
func Simulate(ctx context.Context, input *SimulateInput) (*Summary, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("base_dice", input.BaseDice, 0, vb)
	errors.ValidateRange("runs", input.Runs, 1, MaxRuns, vb)
	if input.Roller == nil {
		vb.RequiredField("roller")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	res, err := resolver.New(&resolver.Config{Roller: input.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	pool := &dicepool.State{BaseDice: input.BaseDice}
	summary := &Summary{
		Runs:       input.Runs,
		BaseDice:   input.BaseDice,
		FaceTotals: make([]int, dicepool.Sides),
	}

	var energy, fury, rolled, subRounds, spawned int
	for i := 0; i < input.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err).WithMeta("completed_runs", i)
		}

		result, err := res.Resolve(pool)
		if err != nil {
			return nil, errors.Wrapf(err, "failed on run %d", i+1)
		}

		energy += result.Energy
		fury += result.Fury
		rolled += len(result.Values)
		subRounds += result.SubRounds()
		spawned += result.Spawned
		summary.MaxDiceRolled = max(summary.MaxDiceRolled, len(result.Values))
		summary.MaxSubRounds = max(summary.MaxSubRounds, result.SubRounds())

		for round := 0; round < result.SubRounds(); round++ {
			for face, n := range result.SubRoundFaces(round) {
				summary.FaceTotals[face] += n
			}
		}
	}

	runs := float64(input.Runs)
	summary.MeanEnergy = float64(energy) / runs
	summary.MeanFury = float64(fury) / runs
	summary.MeanDiceRolled = float64(rolled) / runs
	summary.MeanSubRounds = float64(subRounds) / runs
	if rolled > 0 {
		summary.ExplosionRate = float64(spawned) / float64(rolled)
	}
	summary.VoidDice = pool.VoidDice

	return summary, nil
}
