package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/orchestrators/pool"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
)

type rollOptions struct {
	dice       int
	times      int
	jsonOutput bool
}

// rollOutput is the JSON shape of one roll
type rollOutput struct {
	RollID    string `json:"roll_id"`
	BaseDice  int    `json:"base_dice"`
	Values    []int  `json:"values"`
	Bonus     []int  `json:"bonus"`
	Energy    int    `json:"energy"`
	Fury      int    `json:"fury"`
	SubRounds int    `json:"sub_rounds"`
	VoidDice  int    `json:"void_dice"`
}

func (a *app) rollCmd() *cobra.Command {
	opts := &rollOptions{}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a dice pool",
		Long: `Roll a pool one or more times in a single session. The void tally
carries from roll to roll.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("dice") {
				opts.dice = a.cfg.BaseDice
			}
			return a.runRoll(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.dice, "dice", "n", 0, "Base dice in the pool (default VOID_DICE_BASE_DICE)")
	cmd.Flags().IntVar(&opts.times, "times", 1, "Number of rolls")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func (a *app) runRoll(cmd *cobra.Command, opts *rollOptions) error {
	if opts.times < 1 {
		return errors.InvalidArgumentf("times must be at least 1, got %d", opts.times)
	}

	service, err := a.newPoolService()
	if err != nil {
		return errors.Wrap(err, "failed to create pool service")
	}

	ctx := cmd.Context()
	created, err := service.CreatePool(ctx, &pool.CreatePoolInput{BaseDice: opts.dice})
	if err != nil {
		return errors.Wrap(err, "failed to create pool")
	}
	sessionID := created.Session.ID

	outputs := make([]rollOutput, 0, opts.times)
	var session *poolsession.Session
	for i := 0; i < opts.times; i++ {
		rolled, err := service.RollPool(ctx, &pool.RollPoolInput{SessionID: sessionID})
		if err != nil {
			return errors.Wrapf(err, "failed on roll %d", i+1)
		}
		session = rolled.Session

		result := rolled.Roll.Result
		outputs = append(outputs, rollOutput{
			RollID:    rolled.Roll.RollID,
			BaseDice:  rolled.Roll.BaseDice,
			Values:    result.Values,
			Bonus:     result.BonusValues(),
			Energy:    result.Energy,
			Fury:      result.Fury,
			SubRounds: result.SubRounds(),
			VoidDice:  session.Pool.VoidDice,
		})
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, map[string]any{
			"session_id":   sessionID,
			"rolls":        outputs,
			"total_energy": session.TotalEnergy,
			"total_fury":   session.TotalFury,
			"void_dice":    session.Pool.VoidDice,
		})
	}

	for i, o := range outputs {
		fmt.Fprintf(out, "Roll %d: %v\n", i+1, o.Values)
		fmt.Fprintf(out, "  base %d, bonus %d over %d sub-rounds\n", o.BaseDice, len(o.Bonus), o.SubRounds)
		fmt.Fprintf(out, "  energy %d, fury %d, void %d\n", o.Energy, o.Fury, o.VoidDice)
	}
	if opts.times > 1 {
		fmt.Fprintf(out, "Total: energy %d, fury %d, void %d\n",
			session.TotalEnergy, session.TotalFury, session.Pool.VoidDice)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}
