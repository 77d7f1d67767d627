// Package engine resolves dice rolls into results
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-roller/internal/engine Engine

import (
	"context"
)

// Engine draws dice and folds the triggered specials into a roll result
type Engine interface {
	// RollAction rolls a pool of d20s against a target number
	RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error)

	// RollCombat rolls combat dice, triggering the active specials on Effect faces
	RollCombat(ctx context.Context, input *RollCombatInput) (*RollCombatOutput, error)
}
