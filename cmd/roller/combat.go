package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll"
)

func newCombatCmd(a *app) *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "combat [dice] [specials...]",
		Short: "Roll combat dice with specials",
		Long: `Roll a pool of combat dice. Each Effect face adds the numeric value of
the specials and triggers them. Specials use the Name(s<level>=<numeric>)
grammar; registered templates fill in stacking and derivation. Examples:

  combat 2 Vicious
  combat 4 Vicious(2) Piercing --base 3
  combat 3 "Burn(s1=3)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("dice must be a number, got %q", args[0])
			}

			out, err := a.service.RollCombat(cmd.Context(), &roll.RollCombatInput{
				RollerID:   a.rollerID,
				RollerName: a.rollerName,
				BaseValue:  base,
				DiceCount:  count,
				Tokens:     args[1:],
			})
			if err != nil {
				return fmt.Errorf("failed to roll combat dice: %w", err)
			}

			stderr := cmd.ErrOrStderr()
			for _, token := range out.Degraded {
				fmt.Fprintf(stderr, "warning: read %q as a plain name\n", token)
			}
			for _, token := range out.Dropped {
				fmt.Fprintf(stderr, "warning: ignored %q\n", token)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Result.String())
			fmt.Fprintf(w, "Roll ID: %s\n", out.RollID)
			return nil
		},
	}

	cmd.Flags().IntVar(&base, "base", 0, "Value added before any die is rolled")

	return cmd
}
