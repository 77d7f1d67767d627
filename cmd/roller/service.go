package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-roller/internal/config"
	"github.com/KirkDiggler/rpg-roller/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	"github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-roller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-roller/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-roller/internal/redis"
	"github.com/KirkDiggler/rpg-roller/internal/registry"
	"github.com/KirkDiggler/rpg-roller/internal/repositories/template"
)

// buildService wires the production roll service and loads its templates
func buildService(ctx context.Context, cfg *config.Config) (roll.Service, func(), error) {
	repo, closer, err := newTemplateRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		CombatDie: cfg.Die(),
	})
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to create roll engine: %w", err)
	}

	svc, err := roll.NewOrchestrator(&roll.Config{
		Engine:       adapter,
		Registry:     registry.New(),
		TemplateRepo: repo,
		EventBus:     events.NewBus(),
		IDGenerator:  idgen.NewUUID("roll"),
	})
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to create roll service: %w", err)
	}

	input := &roll.LoadTemplatesInput{}
	if cfg.SeedFile != "" {
		f, err := os.Open(cfg.SeedFile)
		if err != nil {
			closer()
			return nil, nil, fmt.Errorf("failed to open seed file: %w", err)
		}
		defer f.Close()
		input.Seed = f
	}

	if _, err := svc.LoadTemplates(ctx, input); err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return svc, closer, nil
}

// newTemplateRepository stores templates in Redis when an address is
// configured and in memory otherwise
func newTemplateRepository(ctx context.Context, cfg *config.Config) (template.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Debug("Using in-memory template repository")
		return template.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closer := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, client); err != nil {
		closer()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to reach redis at %s", cfg.RedisAddr))
	}

	repo, err := template.NewRedisRepository(&template.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to create template repository: %w", err)
	}

	slog.Debug("Using redis template repository", "addr", cfg.RedisAddr)
	return repo, closer, nil
}
