// Package die models dice as ordered sets of faces. A face is either a
// number or the symbolic Effect marker used by combat dice.
package die

import (
	"slices"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

// Face is a single die face
type Face struct {
	value  int
	effect bool
}

// Effect is the symbolic face that triggers the active specials
var Effect = Face{effect: true}

// Number returns a numeric face
func Number(n int) Face {
	return Face{value: n}
}

// IsEffect reports whether the face is the Effect marker
func (f Face) IsEffect() bool {
	return f.effect
}

// Value returns the face's number; Effect faces are worth 0
func (f Face) Value() int {
	if f.effect {
		return 0
	}
	return f.value
}

// String renders "Effect" or the decimal value
func (f Face) String() string {
	if f.effect {
		return "Effect"
	}
	return strconv.Itoa(f.value)
}

// Die is an ordered, non-empty set of faces sampled uniformly
type Die struct {
	faces []Face
}

// New creates a die from faces
func New(faces ...Face) (*Die, error) {
	if len(faces) == 0 {
		return nil, errors.InvalidArgument("a die needs at least one face")
	}
	return &Die{faces: slices.Clone(faces)}, nil
}

// Standard returns a die numbered 1..n
func Standard(n int) (*Die, error) {
	if n < 1 {
		return nil, errors.InvalidArgumentf("a standard die needs at least one side, got %d", n)
	}
	faces := make([]Face, n)
	for i := range faces {
		faces[i] = Number(i + 1)
	}
	return &Die{faces: faces}, nil
}

// CombatDie returns the six-sided combat die with two Effect faces
func CombatDie() *Die {
	return &Die{faces: []Face{Number(1), Number(2), Number(0), Number(0), Effect, Effect}}
}

// LegacyCombatDie returns the older combat die with a single Effect face
func LegacyCombatDie() *Die {
	return &Die{faces: []Face{Number(1), Number(2), Number(0), Number(0), Number(0), Effect}}
}

// Faces returns a copy of the die's faces in order
func (d *Die) Faces() []Face {
	return slices.Clone(d.faces)
}

// Sides returns the number of faces
func (d *Die) Sides() int {
	return len(d.faces)
}

// Sample draws one face using roller as a "pick one of N" source
func (d *Die) Sample(roller dice.Roller) (Face, error) {
	r, err := roller.Roll(len(d.faces))
	if err != nil {
		return Face{}, errors.Wrap(err, "failed to roll die")
	}
	if r < 1 || r > len(d.faces) {
		return Face{}, errors.Internalf("roller returned %d for a %d-sided die", r, len(d.faces))
	}
	return d.faces[r-1], nil
}

// String renders the faces as "{1, 2, Effect}"
func (d *Die) String() string {
	buf := []byte{'{'}
	for i, f := range d.faces {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, f.String()...)
	}
	return string(append(buf, '}'))
}
