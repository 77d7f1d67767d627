// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-roller/internal/engine"
	"github.com/KirkDiggler/rpg-roller/internal/entities/die"
	"github.com/KirkDiggler/rpg-roller/internal/entities/roll"
	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
	combatDie  *die.Die
	actionDie  *die.Die
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceRoller is the random source; dice.DefaultRoller when nil
	DiceRoller dice.Roller
	// CombatDie is the die for combat pools; die.CombatDie() when nil
	CombatDie *die.Die
}

// Validate checks the configured dice
func (c *AdapterConfig) Validate() error {
	if c.CombatDie != nil && c.CombatDie.Sides() == 0 {
		return errors.InvalidArgument("combat die must have faces")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	combatDie := cfg.CombatDie
	if combatDie == nil {
		combatDie = die.CombatDie()
	}
	actionDie, err := die.Standard(engine.ActionDieSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build action die")
	}

	return &Adapter{
		diceRoller: roller,
		combatDie:  combatDie,
		actionDie:  actionDie,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// RollAction draws DiceCount d20s. Each draw at or under the critical range
// scores two successes, at or under the target one; draws at or above the
// complication range add to the Complication count.
func (a *Adapter) RollAction(_ context.Context, input *engine.RollActionInput) (*engine.RollActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count := max(input.DiceCount, 0)
	out := &engine.RollActionOutput{
		Draws: make([]int, 0, count),
	}
	rolls := make([]string, 0, count)

	for i := 0; i < count; i++ {
		face, err := a.actionDie.Sample(a.diceRoller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll action die %d of %d", i+1, count)
		}

		eval := engine.EvaluateActionFace(face.Value(), input)
		out.Draws = append(out.Draws, eval.Roll)
		out.Successes += eval.Successes
		if eval.Complication {
			out.Complications++
		}
		rolls = append(rolls, eval.Markup())
	}

	out.Result = roll.NewResult(out.Successes, rolls, []special.Special{engine.Complication(out.Complications)})
	return out, nil
}

// RollCombat draws DiceCount combat dice. Numbered faces add to the total.
// Every Effect face adds the combined numeric value of the active specials
// and merges another copy of them into the result.
func (a *Adapter) RollCombat(_ context.Context, input *engine.RollCombatInput) (*engine.RollCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	active := special.Combine(input.Specials...)
	specialTotal := special.NumericTotal(active)

	count := max(input.DiceCount, 0)
	out := &engine.RollCombatOutput{
		Faces:        make([]die.Face, 0, count),
		SpecialTotal: specialTotal,
	}
	rolls := make([]string, 0, count)
	value := input.BaseValue
	var triggered []special.Special

	for i := 0; i < count; i++ {
		face, err := a.combatDie.Sample(a.diceRoller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll combat die %d of %d", i+1, count)
		}

		out.Faces = append(out.Faces, face)
		rolls = append(rolls, face.String())
		if !face.IsEffect() {
			value += face.Value()
			continue
		}
		out.Effects++
		value += specialTotal
		triggered = special.MergeAll(triggered, active)
	}

	out.Result = roll.NewResult(value, rolls, triggered)
	return out, nil
}
