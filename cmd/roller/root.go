package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-roller/internal/config"
	"github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll"
)

// serviceFactory builds the roll service for one invocation. The returned
// func releases whatever the service holds open.
type serviceFactory func(ctx context.Context, cfg *config.Config) (roll.Service, func(), error)

// app carries state shared by every subcommand
type app struct {
	newService serviceFactory

	// Persistent flags
	redisAddr  string
	logLevel   string
	combatDie  string
	seedFile   string
	rollerID   string
	rollerName string

	service roll.Service
	closer  func()
}

// newRootCmd builds the command tree. The returned func releases the service
// and must run once Execute returns, whether or not the command failed.
func newRootCmd(factory serviceFactory) (*cobra.Command, func()) {
	a := &app{newService: factory}

	cmd := &cobra.Command{
		Use:   "rpg-roller",
		Short: "Resolve tabletop RPG dice rolls",
		Long: `rpg-roller resolves d20 action rolls and combat die pools, combining
named specials such as Vicious(2) or Piercing(s1=2) into the result.

Settings come from ROLLER_* environment variables; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.redisAddr, "redis-addr", "", "Redis address for stored templates (default in-memory)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.combatDie, "combat-die", "", "Combat die: standard or legacy")
	flags.StringVar(&a.seedFile, "seed", "", "Extra YAML template seed file")
	flags.StringVar(&a.rollerID, "roller", "cli", "ID of the entity making the roll")
	flags.StringVar(&a.rollerName, "roller-name", "", "Display name of the entity making the roll")

	cmd.AddCommand(newActionCmd(a))
	cmd.AddCommand(newCombatCmd(a))
	cmd.AddCommand(newTemplatesCmd(a))

	return cmd, a.release
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	svc, closer, err := a.newService(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to start roller: %w", err)
	}
	a.service = svc
	a.closer = closer
	return nil
}

func (a *app) release() {
	if a.closer != nil {
		a.closer()
		a.closer = nil
	}
}

// applyFlags overrides environment settings with explicitly set flags
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = a.redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(a.logLevel))
	}
	if flags.Changed("combat-die") {
		cfg.CombatDie = strings.ToLower(strings.TrimSpace(a.combatDie))
	}
	if flags.Changed("seed") {
		cfg.SeedFile = a.seedFile
	}
}
