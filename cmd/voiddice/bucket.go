package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/void-dice/internal/engine/facebucket"
	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	"github.com/KirkDiggler/void-dice/internal/errors"
)

func (a *app) bucketCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "bucket <count>",
		Short: "Roll fresh dice and show their face buckets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidArgumentf("count must be an integer, got %q", args[0])
			}

			summary, err := facebucket.Bucket(n, a.newRoller())
			if err != nil {
				return err
			}

			atLeast := make([]int, dicepool.Sides)
			for face := dicepool.MinFace; face <= dicepool.MaxFace; face++ {
				atLeast[face-1] = summary.AtLeast(face)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, map[string]any{
					"values":   summary.Values,
					"counts":   summary.Counts(),
					"at_least": atLeast,
				})
			}

			fmt.Fprintf(out, "Values: %v\n", summary.Values)
			fmt.Fprintln(out, "Face  Count  At least")
			for face := dicepool.MinFace; face <= dicepool.MaxFace; face++ {
				fmt.Fprintf(out, "%4d  %5d  %8d\n", face, summary.Count(face), atLeast[face-1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
