package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/void-dice/internal/engine/stats"
	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/pkg/roller"
	"github.com/KirkDiggler/void-dice/internal/testutils"
)

func TestSimulate_Scripted(t *testing.T) {
	// run 1: [1,5] then bonus [6] then bonus [2]; run 2: [3,4]
	scripted := testutils.NewScriptedRoller(1, 5, 6, 2, 3, 4)

	summary, err := stats.Simulate(context.Background(), &stats.SimulateInput{
		BaseDice: 2,
		Runs:     2,
		Roller:   scripted,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.5, summary.MeanEnergy)
	assert.Equal(t, 0.5, summary.MeanFury)
	assert.Equal(t, 3.0, summary.MeanDiceRolled)
	assert.Equal(t, 2.0, summary.MeanSubRounds)
	assert.Equal(t, 4, summary.MaxDiceRolled)
	assert.Equal(t, 3, summary.MaxSubRounds)
	assert.InDelta(t, 2.0/6.0, summary.ExplosionRate, 1e-9)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, summary.FaceTotals)
	assert.Equal(t, 2, summary.VoidDice)
}

func TestSimulate_Seeded(t *testing.T) {
	summary, err := stats.Simulate(context.Background(), &stats.SimulateInput{
		BaseDice: 5,
		Runs:     20000,
		Roller:   roller.NewSeeded(11),
	})
	require.NoError(t, err)

	// each base die starts a chain of 1.5 dice on average
	assert.InDelta(t, 7.5, summary.MeanDiceRolled, 0.2)
	assert.InDelta(t, 7.5*5.0/6.0, summary.MeanEnergy, 0.2)
	assert.InDelta(t, 7.5/6.0, summary.MeanFury, 0.1)
	assert.InDelta(t, 1.0/3.0, summary.ExplosionRate, 0.01)

	total := 0
	for _, n := range summary.FaceTotals {
		total += n
	}
	assert.InDelta(t, summary.MeanDiceRolled*20000, float64(total), 0.5)
}

func TestSimulate_EmptyPool(t *testing.T) {
	summary, err := stats.Simulate(context.Background(), &stats.SimulateInput{
		Runs:   10,
		Roller: testutils.NewScriptedRoller(),
	})
	require.NoError(t, err)

	assert.Zero(t, summary.MeanDiceRolled)
	assert.Zero(t, summary.ExplosionRate)
	assert.Zero(t, summary.VoidDice)
}

func TestSimulate_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input *stats.SimulateInput
	}{
		{"nil input", nil},
		{"no runs", &stats.SimulateInput{BaseDice: 1, Roller: roller.NewSeeded(1)}},
		{"too many runs", &stats.SimulateInput{BaseDice: 1, Runs: stats.MaxRuns + 1, Roller: roller.NewSeeded(1)}},
		{"negative dice", &stats.SimulateInput{BaseDice: -1, Runs: 1, Roller: roller.NewSeeded(1)}},
		{"no roller", &stats.SimulateInput{BaseDice: 1, Runs: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stats.Simulate(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSimulate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stats.Simulate(ctx, &stats.SimulateInput{BaseDice: 3, Runs: 5, Roller: roller.NewSeeded(1)})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
	assert.Equal(t, 0, errors.GetMeta(err)["completed_runs"])
}
