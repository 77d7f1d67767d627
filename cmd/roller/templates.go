package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage special templates",
	}

	cmd.AddCommand(newListTemplatesCmd(a))
	cmd.AddCommand(newGetTemplateCmd(a))
	cmd.AddCommand(newRegisterTemplateCmd(a))
	cmd.AddCommand(newUnregisterTemplateCmd(a))

	return cmd
}

func newListTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service.ListTemplates(cmd.Context(), &roll.ListTemplatesInput{})
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, tmpl := range out.Templates {
				fmt.Fprintln(w, describeTemplate(tmpl))
			}
			fmt.Fprintf(w, "%d templates\n", len(out.Templates))
			return nil
		},
	}
}

func newGetTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [name]",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.GetTemplate(cmd.Context(), &roll.GetTemplateInput{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeTemplate(out.Template))
			return nil
		},
	}
}

func newRegisterTemplateCmd(a *app) *cobra.Command {
	var (
		derivation string
		minLevel   int
		maxLevel   int
		persist    bool
	)

	cmd := &cobra.Command{
		Use:   "register [token]",
		Short: "Register a template",
		Long: `Register a template from a token without a value. Examples:

  templates register "Burn(s)" --derivation identity --min 1
  templates register Shred --derivation scaled:2 --min 1 --max 3 --persist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &roll.RegisterTemplateInput{
				Token:      args[0],
				Derivation: derivation,
				Persist:    persist,
			}
			if cmd.Flags().Changed("min") {
				input.Min = &minLevel
			}
			if cmd.Flags().Changed("max") {
				input.Max = &maxLevel
			}

			out, err := a.service.RegisterTemplate(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to register template: %w", err)
			}

			w := cmd.OutOrStdout()
			if !out.Registered {
				fmt.Fprintf(w, "Already registered: %s\n", describeTemplate(out.Template))
				return nil
			}
			fmt.Fprintf(w, "Registered: %s\n", describeTemplate(out.Template))
			if out.Persisted {
				fmt.Fprintln(w, "Stored for future runs")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&derivation, "derivation", "", "none, identity, constant:k or scaled:k")
	cmd.Flags().IntVar(&minLevel, "min", 0, "Lowest allowed level")
	cmd.Flags().IntVar(&maxLevel, "max", 0, "Highest allowed level")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the template in the repository")

	return cmd
}

func newUnregisterTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister [name]",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.UnregisterTemplate(cmd.Context(), &roll.UnregisterTemplateInput{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to unregister template: %w", err)
			}
			if out.Removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was not registered\n", args[0])
			}
			return nil
		},
	}
}

// describeTemplate renders "Name stacking derivation=... levels=min..max"
func describeTemplate(t special.Special) string {
	parts := []string{t.Name()}
	if t.Stacks() {
		parts = append(parts, "stacking")
	}
	parts = append(parts, "derivation="+t.Derivation().String())
	if b, ok := t.Bounds(); ok {
		parts = append(parts, "levels="+bound(b.Min)+".."+bound(b.Max))
	}
	return strings.Join(parts, " ")
}

func bound(b *int) string {
	if b == nil {
		return "*"
	}
	return strconv.Itoa(*b)
}
