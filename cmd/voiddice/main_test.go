package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/void-dice/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

type rollJSON struct {
	SessionID   string       `json:"session_id"`
	Rolls       []rollOutput `json:"rolls"`
	TotalEnergy int          `json:"total_energy"`
	TotalFury   int          `json:"total_fury"`
	VoidDice    int          `json:"void_dice"`
}

func TestRollCommand_JSON(t *testing.T) {
	out, err := execute(t, "roll", "--seed", "7", "--dice", "3", "--times", "4", "--json")
	require.NoError(t, err)

	var got rollJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rolls, 4)
	assert.Regexp(t, `^pool_`, got.SessionID)

	energy, fury, void := 0, 0, 0
	for _, roll := range got.Rolls {
		assert.Equal(t, 3, roll.BaseDice)
		assert.Len(t, roll.Values, 3+len(roll.Bonus))
		// every die gives either energy or fury
		assert.Equal(t, len(roll.Values), roll.Energy+roll.Fury)
		assert.GreaterOrEqual(t, roll.VoidDice, void)

		energy += roll.Energy
		fury += roll.Fury
		void = roll.VoidDice
	}
	assert.Equal(t, energy, got.TotalEnergy)
	assert.Equal(t, fury, got.TotalFury)
	assert.Equal(t, void, got.VoidDice)
}

func TestRollCommand_SeedIsRepeatable(t *testing.T) {
	first, err := execute(t, "roll", "--seed", "99", "--dice", "6")
	require.NoError(t, err)
	second, err := execute(t, "roll", "--seed", "99", "--dice", "6")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Roll 1: [")
}

func TestRollCommand_UsesConfiguredDice(t *testing.T) {
	t.Setenv("VOID_DICE_BASE_DICE", "4")

	out, err := execute(t, "roll", "--seed", "1", "--json")
	require.NoError(t, err)

	var got rollJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rolls, 1)
	assert.Equal(t, 4, got.Rolls[0].BaseDice)
}

func TestRollCommand_Errors(t *testing.T) {
	_, err := execute(t, "roll", "--dice", "31")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, 64, errors.GetCode(err).ExitCode())

	_, err = execute(t, "roll", "--times", "0")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = execute(t, "roll", "--log-level", "loud")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBucketCommand(t *testing.T) {
	out, err := execute(t, "bucket", "12", "--seed", "3", "--json")
	require.NoError(t, err)

	var got struct {
		Values  []int `json:"values"`
		Counts  []int `json:"counts"`
		AtLeast []int `json:"at_least"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Len(t, got.Values, 12)
	assert.IsNonDecreasing(t, got.Values)
	assert.Equal(t, 12, got.AtLeast[0])

	total := 0
	for _, n := range got.Counts {
		total += n
	}
	assert.Equal(t, 12, total)
	assert.IsNonIncreasing(t, got.AtLeast)
}

func TestBucketCommand_Errors(t *testing.T) {
	_, err := execute(t, "bucket", "--", "-1")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = execute(t, "bucket", "many")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "--seed", "5", "--dice", "5", "--runs", "500", "--json")
	require.NoError(t, err)

	var got struct {
		Runs           int     `json:"runs"`
		BaseDice       int     `json:"base_dice"`
		MeanDiceRolled float64 `json:"mean_dice_rolled"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 500, got.Runs)
	assert.Equal(t, 5, got.BaseDice)
	assert.GreaterOrEqual(t, got.MeanDiceRolled, 5.0)
}
