// Package special models named game modifiers ("specials"), their textual
// grammar, and the merge rule that folds repeated occurrences into one
// canonical, name-ordered list.
package special

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

var namePattern = regexp.MustCompile(`^\p{L}[\p{L}\p{N}_]*(?:-[\p{L}\p{N}_]+)*$`)

// Kind is the closed set of special variants
type Kind int

const (
	// KindPlain has neither bounds nor a numeric derivation
	KindPlain Kind = iota
	// KindDerived carries a numeric derivation but no bounds
	KindDerived
	// KindBounded carries level bounds, with or without a derivation
	KindBounded
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindDerived:
		return "derived"
	case KindBounded:
		return "bounded"
	default:
		return "plain"
	}
}

// Bounds limits the levels a bounded special may take. A nil side is open.
type Bounds struct {
	Min *int
	Max *int
}

// Contains reports whether level lies within the bounds
func (b Bounds) Contains(level int) bool {
	if b.Min != nil && level < *b.Min {
		return false
	}
	if b.Max != nil && level > *b.Max {
		return false
	}
	return true
}

func (b Bounds) equal(o Bounds) bool {
	return intPtrEqual(b.Min, o.Min) && intPtrEqual(b.Max, o.Max)
}

// Special is an immutable named modifier.
type Special struct {
	name       string
	value      int
	stacks     bool
	derivation Derivation
	bounds     *Bounds
	template   bool
}

// Option configures a Special during construction
type Option func(*Special)

// WithDerivation sets the numeric contribution function
func WithDerivation(d Derivation) Option {
	return func(s *Special) {
		s.derivation = d
	}
}

// WithBounds makes the special bounded. Either side may be nil.
func WithBounds(minLevel, maxLevel *int) Option {
	return func(s *Special) {
		s.bounds = &Bounds{Min: copyInt(minLevel), Max: copyInt(maxLevel)}
	}
}

// ValidateName checks name against the special name grammar: a letter-led
// word, optionally hyphenated, with no whitespace.
func ValidateName(name string) error {
	if name == "" {
		return errors.InvalidName(name, "must not be empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.InvalidName(name, "must not contain whitespace")
	}
	if !namePattern.MatchString(name) {
		return errors.InvalidName(name, "must start with a letter and use only letters, digits, underscores and single hyphens")
	}
	return nil
}

// New creates a special. The name is trimmed before validation.
func New(name string, value int, stacks bool, opts ...Option) (Special, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return Special{}, err
	}

	s := Special{
		name:   name,
		value:  value,
		stacks: stacks,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

// MustNew is New for package-level values; it panics on an invalid name.
func MustNew(name string, value int, stacks bool, opts ...Option) Special {
	s, err := New(name, value, stacks, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewTemplate creates a template: a bounded special with value 0 that
// generates instances through Instantiate. Without WithBounds the template
// is open on both sides.
func NewTemplate(name string, stacks bool, opts ...Option) (Special, error) {
	s, err := New(name, 0, stacks, opts...)
	if err != nil {
		return Special{}, err
	}
	if s.bounds == nil {
		s.bounds = &Bounds{}
	}
	if s.bounds.Min != nil && s.bounds.Max != nil && *s.bounds.Min > *s.bounds.Max {
		return Special{}, errors.InvalidArgumentf("template %s has min level %d above max level %d",
			s.name, *s.bounds.Min, *s.bounds.Max).WithMeta(errors.MetaName, s.name)
	}
	s.template = true
	return s, nil
}

// Name returns the special's name
func (s Special) Name() string { return s.name }

// Value returns the special's level
func (s Special) Value() int { return s.value }

// Stacks reports whether repeated occurrences accumulate
func (s Special) Stacks() bool { return s.stacks }

// Derivation returns the numeric contribution function
func (s Special) Derivation() Derivation { return s.derivation }

// IsTemplate reports whether the special is a template
func (s Special) IsTemplate() bool { return s.template }

// Bounds returns the level bounds and whether the special is bounded
func (s Special) Bounds() (Bounds, bool) {
	if s.bounds == nil {
		return Bounds{}, false
	}
	return Bounds{Min: copyInt(s.bounds.Min), Max: copyInt(s.bounds.Max)}, true
}

// Kind classifies the special
func (s Special) Kind() Kind {
	switch {
	case s.bounds != nil:
		return KindBounded
	case s.derivation.Kind() != DerivationNone:
		return KindDerived
	default:
		return KindPlain
	}
}

// Stacked applies a repeated occurrence worth delta. Stacking specials
// accumulate; non-stacking specials discard the increment.
func (s Special) Stacked(delta int) Special {
	if !s.stacks {
		return s
	}
	out := s
	out.value = s.value + delta
	return out
}

// NumericValue evaluates the derivation at the current level
func (s Special) NumericValue() (int, bool) {
	return s.derivation.Apply(s.value)
}

// ValidLevel reports whether level is allowed by the special's bounds.
// Unbounded specials accept every level.
func (s Special) ValidLevel(level int) bool {
	if s.bounds == nil {
		return true
	}
	return s.bounds.Contains(level)
}

// Instantiate derives a concrete special at level from a template
func (s Special) Instantiate(level int) (Special, error) {
	if !s.template {
		return Special{}, errors.FailedPreconditionf("%s is not a template", s.name).
			WithMeta(errors.MetaName, s.name)
	}
	if !s.ValidLevel(level) {
		return Special{}, errors.LevelOutOfRange(s.name, level, s.bounds.Min, s.bounds.Max)
	}

	out := s
	out.template = false
	out.value = level
	return out, nil
}

// Equal reports structural equality. Derivations compare by the numeric
// value they produce at the current level. Bounds only distinguish
// templates; an instance is equal to its parsed String form.
func (s Special) Equal(o Special) bool {
	if s.name != o.name || s.value != o.value || s.stacks != o.stacks || s.template != o.template {
		return false
	}
	if s.template {
		if (s.bounds == nil) != (o.bounds == nil) {
			return false
		}
		if s.bounds != nil && !s.bounds.equal(*o.bounds) {
			return false
		}
	}
	sn, sok := s.NumericValue()
	on, ook := o.NumericValue()
	return sok == ook && sn == on
}

// Compare orders specials by name, then value, then numeric value.
// A missing numeric value sorts before any present one.
func Compare(a, b Special) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.value, b.value); c != 0 {
		return c
	}
	an, aok := a.NumericValue()
	bn, bok := b.NumericValue()
	switch {
	case aok == bok && !aok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return cmp.Compare(an, bn)
	}
}

// String renders the canonical token form: Name(s3=2). The "s" marks a
// stacking special and "=n" carries the numeric value when there is one.
func (s Special) String() string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteByte('(')
	if s.stacks {
		b.WriteByte('s')
	}
	b.WriteString(strconv.Itoa(s.value))
	if n, ok := s.NumericValue(); ok {
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(')')
	return b.String()
}

// Text is the display form used in roll breakdowns: empty at level 0, the
// bare name for a single non-stacking occurrence, otherwise "Name N".
func (s Special) Text() string {
	switch {
	case s.value == 0:
		return ""
	case s.value == 1 && !s.stacks:
		return s.name
	default:
		return fmt.Sprintf("%s %d", s.name, s.value)
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
