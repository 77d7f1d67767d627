package special

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

// DerivationKind identifies how a special turns its level into a numeric
// contribution.
type DerivationKind int

const (
	// DerivationNone never contributes
	DerivationNone DerivationKind = iota
	// DerivationIdentity contributes the level itself
	DerivationIdentity
	// DerivationConstant contributes a fixed literal regardless of level
	DerivationConstant
	// DerivationScaled contributes level multiplied by a factor
	DerivationScaled
	// DerivationCustom wraps an arbitrary pure function
	DerivationCustom
)

// Derivation is the numeric contribution function of a special. The zero
// value is DerivationNone.
type Derivation struct {
	kind   DerivationKind
	factor int
	fn     func(level int) (int, bool)
}

// None returns a derivation that never yields a contribution
func None() Derivation {
	return Derivation{}
}

// Identity returns a derivation yielding the level unchanged
func Identity() Derivation {
	return Derivation{kind: DerivationIdentity}
}

// Constant returns a derivation yielding k for every level
func Constant(k int) Derivation {
	return Derivation{kind: DerivationConstant, factor: k}
}

// Scaled returns a derivation yielding level*k
func Scaled(k int) Derivation {
	return Derivation{kind: DerivationScaled, factor: k}
}

// Custom wraps fn. A nil fn is the same as None.
// Custom derivations cannot be rendered or persisted.
func Custom(fn func(level int) (int, bool)) Derivation {
	if fn == nil {
		return None()
	}
	return Derivation{kind: DerivationCustom, fn: fn}
}

// Kind returns the derivation kind
func (d Derivation) Kind() DerivationKind {
	return d.kind
}

// Factor returns the constant or scale factor; zero for other kinds
func (d Derivation) Factor() int {
	return d.factor
}

// Apply evaluates the derivation for level
func (d Derivation) Apply(level int) (int, bool) {
	switch d.kind {
	case DerivationIdentity:
		return level, true
	case DerivationConstant:
		return d.factor, true
	case DerivationScaled:
		return level * d.factor, true
	case DerivationCustom:
		return d.fn(level)
	default:
		return 0, false
	}
}

// Serializable reports whether the derivation survives String/ParseDerivation
func (d Derivation) Serializable() bool {
	return d.kind != DerivationCustom
}

// String renders the derivation as "none", "identity", "constant:k",
// "scaled:k" or "custom".
func (d Derivation) String() string {
	switch d.kind {
	case DerivationIdentity:
		return "identity"
	case DerivationConstant:
		return fmt.Sprintf("constant:%d", d.factor)
	case DerivationScaled:
		return fmt.Sprintf("scaled:%d", d.factor)
	case DerivationCustom:
		return "custom"
	default:
		return "none"
	}
}

// ParseDerivation is the inverse of Derivation.String for serializable kinds.
// An empty string is None.
func ParseDerivation(s string) (Derivation, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(strings.ToLower(s)), ":")
	switch kind {
	case "", "none":
		return None(), nil
	case "identity":
		return Identity(), nil
	case "constant", "scaled":
		if !hasArg {
			return Derivation{}, errors.InvalidArgumentf("derivation %q requires a factor", s)
		}
		k, err := strconv.Atoi(arg)
		if err != nil {
			return Derivation{}, errors.InvalidArgumentf("derivation %q has a non-integer factor", s)
		}
		if kind == "constant" {
			return Constant(k), nil
		}
		return Scaled(k), nil
	default:
		return Derivation{}, errors.InvalidArgumentf("unknown derivation %q", s)
	}
}
