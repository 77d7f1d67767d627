package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll"
)

func newActionCmd(a *app) *cobra.Command {
	var (
		target       int
		critical     int
		complication int
	)

	cmd := &cobra.Command{
		Use:   "action [dice]",
		Short: "Roll a pool of d20s against a target number",
		Long: `Roll d20s and count successes. A die at or under the critical range
scores two, at or under the target one. Dice at or above the complication
range each add a complication. Examples:

  action 2 --target 8
  action 3 --target 12 --critical 2 --complication 19`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("dice must be a number, got %q", args[0])
			}

			input := &roll.RollActionInput{
				RollerID:     a.rollerID,
				RollerName:   a.rollerName,
				DiceCount:    count,
				TargetNumber: target,
			}
			if cmd.Flags().Changed("critical") {
				input.CriticalRange = &critical
			}
			if cmd.Flags().Changed("complication") {
				input.ComplicationRange = &complication
			}

			out, err := a.service.RollAction(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to roll action dice: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Result.String())
			fmt.Fprintf(w, "Roll ID: %s\n", out.RollID)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 10, "Highest roll that counts as a success")
	cmd.Flags().IntVar(&critical, "critical", roll.DefaultCriticalRange, "Highest roll that counts as a critical")
	cmd.Flags().IntVar(&complication, "complication", roll.DefaultComplicationRange,
		"Lowest roll that causes a complication")

	return cmd
}
