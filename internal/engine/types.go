package engine

import (
	"github.com/KirkDiggler/rpg-roller/internal/entities/die"
	"github.com/KirkDiggler/rpg-roller/internal/entities/roll"
	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
)

// ActionDieSides is the size of the die used for action rolls
const ActionDieSides = 20

// ComplicationName is the special that counts complications on action rolls
const ComplicationName = "Complication"

// RollActionInput contains the thresholds for an action roll
type RollActionInput struct {
	DiceCount         int
	TargetNumber      int
	CriticalRange     int
	ComplicationRange int
}

// RollActionOutput contains the resolved action roll
type RollActionOutput struct {
	Result        *roll.Result
	Draws         []int
	Successes     int
	Complications int
}

// RollCombatInput contains the pool and the specials active for it
type RollCombatInput struct {
	BaseValue int
	DiceCount int
	Specials  []special.Special
}

// RollCombatOutput contains the resolved combat roll
type RollCombatOutput struct {
	Result       *roll.Result
	Faces        []die.Face
	Effects      int
	SpecialTotal int
}
