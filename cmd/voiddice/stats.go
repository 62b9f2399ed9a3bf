package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/void-dice/internal/engine/stats"
)

func (a *app) statsCmd() *cobra.Command {
	var (
		dice       int
		runs       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Simulate many rolls of one pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("dice") {
				dice = a.cfg.BaseDice
			}

			summary, err := stats.Simulate(cmd.Context(), &stats.SimulateInput{
				BaseDice: dice,
				Runs:     runs,
				Roller:   a.newRoller(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, summary)
			}

			fmt.Fprintf(out, "%d runs of %d dice\n", summary.Runs, summary.BaseDice)
			fmt.Fprintf(out, "  mean energy      %.3f\n", summary.MeanEnergy)
			fmt.Fprintf(out, "  mean fury        %.3f\n", summary.MeanFury)
			fmt.Fprintf(out, "  mean dice rolled %.3f (max %d)\n", summary.MeanDiceRolled, summary.MaxDiceRolled)
			fmt.Fprintf(out, "  mean sub-rounds  %.3f (max %d)\n", summary.MeanSubRounds, summary.MaxSubRounds)
			fmt.Fprintf(out, "  explosion rate   %.3f\n", summary.ExplosionRate)
			fmt.Fprintf(out, "  face totals      %v\n", summary.FaceTotals)
			return nil
		},
	}

	cmd.Flags().IntVarP(&dice, "dice", "n", 0, "Base dice in the pool (default VOID_DICE_BASE_DICE)")
	cmd.Flags().IntVar(&runs, "runs", 10000, "Number of simulated rolls")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
