// Package roll implements the roll orchestrator: it turns user-typed special
// tokens into specials via the template registry, runs the roll engine and
// publishes the outcome on the event bus.
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/rpg-roller/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-roller/internal/engine"
	"github.com/KirkDiggler/rpg-roller/internal/entities"
	rollresult "github.com/KirkDiggler/rpg-roller/internal/entities/roll"
	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	"github.com/KirkDiggler/rpg-roller/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-roller/internal/registry"
	"github.com/KirkDiggler/rpg-roller/internal/repositories/template"
)

const (
	// EventActionResolved is published after every action roll
	EventActionResolved = "roll.action.resolved"
	// EventCombatResolved is published after every combat roll
	EventCombatResolved = "roll.combat.resolved"

	// Event context keys
	ContextKeyRollID   = "roll_id"
	ContextKeyValue    = "value"
	ContextKeyRolls    = "rolls"
	ContextKeySpecials = "specials"
	ContextKeyText     = "text"

	// DefaultCriticalRange is used when an action roll sets no critical range
	DefaultCriticalRange = 1
	// DefaultComplicationRange is used when an action roll sets no complication range
	DefaultComplicationRange = 20

	// defaultTokenLevel is the level of a token that names no value
	defaultTokenLevel = 1
)

// Service defines the interface for roll operations
type Service interface {
	// Rolling
	RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error)
	RollCombat(ctx context.Context, input *RollCombatInput) (*RollCombatOutput, error)

	// Template administration
	RegisterTemplate(ctx context.Context, input *RegisterTemplateInput) (*RegisterTemplateOutput, error)
	UnregisterTemplate(ctx context.Context, input *UnregisterTemplateInput) (*UnregisterTemplateOutput, error)
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)
	LoadTemplates(ctx context.Context, input *LoadTemplatesInput) (*LoadTemplatesOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Engine       engine.Engine
	Registry     *registry.Registry
	TemplateRepo template.Repository
	EventBus     events.EventBus
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.TemplateRepo == nil {
		vb.RequiredField("TemplateRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine       engine.Engine
	templateRepo template.Repository
	eventBus     events.EventBus
	idGen        idgen.Generator

	// mu guards registry
	mu       sync.RWMutex
	registry *registry.Registry
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:       cfg.Engine,
		registry:     cfg.Registry,
		templateRepo: cfg.TemplateRepo,
		eventBus:     cfg.EventBus,
		idGen:        cfg.IDGenerator,
	}, nil
}

// RollAction rolls a pool of d20s and publishes the result
func (o *orchestrator) RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("roller_id", input.RollerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	engineInput := &engine.RollActionInput{
		DiceCount:         input.DiceCount,
		TargetNumber:      input.TargetNumber,
		CriticalRange:     DefaultCriticalRange,
		ComplicationRange: DefaultComplicationRange,
	}
	if input.CriticalRange != nil {
		engineInput.CriticalRange = *input.CriticalRange
	}
	if input.ComplicationRange != nil {
		engineInput.ComplicationRange = *input.ComplicationRange
	}

	out, err := o.engine.RollAction(ctx, engineInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll action dice")
	}

	rollID := o.idGen.Generate()
	o.publish(ctx, EventActionResolved, rollID, entities.NewRoller(input.RollerID, input.RollerName), out.Result)

	slog.Info("Action roll resolved",
		"roll_id", rollID,
		"roller_id", input.RollerID,
		"dice", input.DiceCount,
		"target", input.TargetNumber,
		"successes", out.Result.Value(),
		"complications", out.Complications)

	return &RollActionOutput{
		RollID:        rollID,
		Result:        out.Result,
		Complications: out.Complications,
	}, nil
}

// RollCombat resolves tokens against the registry, rolls combat dice and
// publishes the result. A level outside a template's bounds fails the roll
// before any die is drawn.
func (o *orchestrator) RollCombat(ctx context.Context, input *RollCombatInput) (*RollCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("roller_id", input.RollerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.resolveTokens(input.Tokens)
	if err != nil {
		return nil, err
	}

	active := make([]special.Special, 0, len(resolved.specials)+len(input.Specials))
	active = append(active, resolved.specials...)
	active = append(active, input.Specials...)

	out, err := o.engine.RollCombat(ctx, &engine.RollCombatInput{
		BaseValue: input.BaseValue,
		DiceCount: input.DiceCount,
		Specials:  active,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll combat dice")
	}

	rollID := o.idGen.Generate()
	o.publish(ctx, EventCombatResolved, rollID, entities.NewRoller(input.RollerID, input.RollerName), out.Result)

	slog.Info("Combat roll resolved",
		"roll_id", rollID,
		"roller_id", input.RollerID,
		"dice", input.DiceCount,
		"effects", out.Effects,
		"total", out.Result.Value())

	return &RollCombatOutput{
		RollID:       rollID,
		Result:       out.Result,
		Effects:      out.Effects,
		SpecialTotal: out.SpecialTotal,
		Degraded:     resolved.degraded,
		Dropped:      resolved.dropped,
	}, nil
}

type resolvedTokens struct {
	specials []special.Special
	degraded []string
	dropped  []string
}

// resolveTokens parses user tokens. Malformed tokens degrade to their first
// usable name instead of failing the roll; one that still cannot be resolved
// is dropped. Only well-formed tokens fail the roll.
func (o *orchestrator) resolveTokens(tokens []string) (*resolvedTokens, error) {
	out := &resolvedTokens{}

	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, raw := range tokens {
		tok, err := special.ParseToken(raw)
		if err == nil {
			s, err := o.resolveToken(tok)
			if err != nil {
				return nil, err
			}
			out.specials = append(out.specials, s)
			continue
		}

		salvaged, ok := special.ParseLenient(raw)
		if !ok {
			slog.Warn("Dropping unreadable special token", "token", raw, "error", err)
			out.dropped = append(out.dropped, raw)
			continue
		}

		s, resolveErr := o.resolveToken(o.salvagedToken(salvaged.Name()))
		if resolveErr != nil {
			slog.Warn("Dropping malformed special token", "token", raw, "name", salvaged.Name(), "error", resolveErr)
			out.dropped = append(out.dropped, raw)
			continue
		}
		slog.Warn("Degrading malformed special token", "token", raw, "name", s.Name(), "level", s.Value(), "error", err)
		out.degraded = append(out.degraded, raw)
		out.specials = append(out.specials, s)
	}

	return out, nil
}

// salvagedToken names the level for a name read out of a malformed token.
// A template whose bounds exclude the default level starts at its minimum.
func (o *orchestrator) salvagedToken(name string) special.Token {
	tok := special.Token{Name: name}

	registered, ok := o.registry.Lookup(name)
	if !ok || registered.ValidLevel(defaultTokenLevel) {
		return tok
	}
	if b, bounded := registered.Bounds(); bounded && b.Min != nil {
		level := *b.Min
		tok.Value = &level
	}
	return tok
}

// resolveToken builds the special a token names. Registered templates supply
// stacking, bounds and derivation; a "=n" literal overrides the derivation.
func (o *orchestrator) resolveToken(tok special.Token) (special.Special, error) {
	level := tok.ValueOr(defaultTokenLevel)

	registered, ok := o.registry.Lookup(tok.Name)
	if !ok {
		return special.New(tok.Name, level, tok.Stacks, tok.Options()...)
	}

	var (
		s   special.Special
		err error
	)
	if registered.IsTemplate() {
		s, err = registered.Instantiate(level)
	} else {
		s, err = special.New(registered.Name(), level, registered.Stacks(),
			special.WithDerivation(registered.Derivation()))
	}
	if err != nil {
		return special.Special{}, err
	}

	if tok.Numeric == nil {
		return s, nil
	}
	opts := []special.Option{special.WithDerivation(special.Constant(*tok.Numeric))}
	if b, bounded := s.Bounds(); bounded {
		opts = append(opts, special.WithBounds(b.Min, b.Max))
	}
	return special.New(s.Name(), s.Value(), s.Stacks(), opts...)
}

// publish notifies subscribers of a resolved roll. Subscriber failures are
// logged; the roll itself has already happened.
func (o *orchestrator) publish(ctx context.Context, eventType, rollID string, roller core.Entity, result *rollresult.Result) {
	event := events.NewGameEvent(eventType, roller, nil)
	event.Context().Set(ContextKeyRollID, rollID)
	event.Context().Set(ContextKeyValue, result.Value())
	event.Context().Set(ContextKeyRolls, result.Rolls())
	event.Context().Set(ContextKeySpecials, result.Specials())
	event.Context().Set(ContextKeyText, result.String())

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish roll event",
			"event", eventType,
			"roll_id", rollID,
			"error", err)
	}
}

// RegisterTemplate adds a template to the registry and optionally stores it
func (o *orchestrator) RegisterTemplate(
	ctx context.Context,
	input *RegisterTemplateInput,
) (*RegisterTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("token", input.Token, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	tmpl, err := registry.SeedTemplate{
		Token:      input.Token,
		Derivation: input.Derivation,
		Min:        input.Min,
		Max:        input.Max,
	}.Build()
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.registry.Register(tmpl) {
		existing, _ := o.registry.Lookup(tmpl.Name())
		slog.Info("Template already registered", "name", tmpl.Name())
		return &RegisterTemplateOutput{Registered: false, Template: existing}, nil
	}

	if input.Persist {
		if _, err := o.templateRepo.Create(ctx, &template.CreateInput{Template: tmpl}); err != nil {
			o.registry.Unregister(tmpl.Name())
			return nil, errors.Wrapf(err, "failed to persist template %s", tmpl.Name())
		}
	}

	slog.Info("Template registered",
		"name", tmpl.Name(),
		"derivation", tmpl.Derivation().String(),
		"persisted", input.Persist)

	return &RegisterTemplateOutput{
		Registered: true,
		Persisted:  input.Persist,
		Template:   tmpl,
	}, nil
}

// UnregisterTemplate removes a template from the registry and the repository
func (o *orchestrator) UnregisterTemplate(
	ctx context.Context,
	input *UnregisterTemplateInput,
) (*UnregisterTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	name := input.Name
	if existing, ok := o.registry.Lookup(name); ok {
		name = existing.Name()
	}
	removed := o.registry.Unregister(name)

	if _, err := o.templateRepo.Delete(ctx, &template.DeleteInput{Name: name}); err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to delete stored template %s", name)
	}

	if removed {
		slog.Info("Template unregistered", "name", name)
	}

	return &UnregisterTemplateOutput{Removed: removed}, nil
}

// GetTemplate looks up a registered template by name
func (o *orchestrator) GetTemplate(_ context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	tmpl, ok := o.registry.Lookup(input.Name)
	if !ok {
		return nil, errors.NotFoundf("template %s is not registered", input.Name).
			WithMeta(errors.MetaName, input.Name)
	}

	return &GetTemplateOutput{Template: tmpl}, nil
}

// ListTemplates returns every registered template sorted by name
func (o *orchestrator) ListTemplates(_ context.Context, _ *ListTemplatesInput) (*ListTemplatesOutput, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return &ListTemplatesOutput{Templates: o.registry.List()}, nil
}

// LoadTemplates seeds the registry. Names already registered are skipped and
// logged, so earlier sources win.
func (o *orchestrator) LoadTemplates(ctx context.Context, input *LoadTemplatesInput) (*LoadTemplatesOutput, error) {
	if input == nil {
		input = &LoadTemplatesInput{}
	}

	var sources []special.Special
	if !input.SkipDefaults {
		sources = append(sources, registry.Defaults()...)
	}
	if input.Seed != nil {
		seeded, err := registry.ParseSeed(input.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read template seed")
		}
		sources = append(sources, seeded...)
	}

	stored, err := o.templateRepo.List(ctx, &template.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stored templates")
	}
	sources = append(sources, stored.Templates...)

	o.mu.Lock()
	defer o.mu.Unlock()

	out := &LoadTemplatesOutput{}
	for _, tmpl := range sources {
		if !o.registry.Register(tmpl) {
			slog.Warn("Skipping duplicate template", "name", tmpl.Name())
			out.Skipped = append(out.Skipped, tmpl.Name())
			continue
		}
		out.Loaded++
	}

	slog.Info("Templates loaded",
		"loaded", out.Loaded,
		"skipped", len(out.Skipped),
		"stored", len(stored.Templates))

	return out, nil
}
