package engine

import (
	"strconv"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
)

// ActionFace is the evaluation of a single action die
type ActionFace struct {
	Roll         int
	Successes    int
	Critical     bool
	Complication bool
}

// EvaluateActionFace scores r against the action roll thresholds.
// A critical is worth two successes and a hit one.
func EvaluateActionFace(r int, input *RollActionInput) ActionFace {
	face := ActionFace{Roll: r}
	switch {
	case r <= input.CriticalRange:
		face.Successes = 2
		face.Critical = true
	case r <= input.TargetNumber:
		face.Successes = 1
	}
	face.Complication = r >= input.ComplicationRange
	return face
}

// Markup renders the face for a chat breakdown. Failures are struck
// through, criticals bolded and complications underlined; the three
// combine freely.
func (f ActionFace) Markup() string {
	s := strconv.Itoa(f.Roll)
	if f.Complication {
		s = "__" + s + "__"
	}
	if f.Critical {
		s = "**" + s + "**"
	}
	if f.Successes == 0 {
		s = "~~" + s + "~~"
	}
	return s
}

// Complication returns the stacking special that counts complications
func Complication(count int) special.Special {
	return special.MustNew(ComplicationName, count, true)
}
