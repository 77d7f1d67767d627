package special

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

var (
	tokenPattern = regexp.MustCompile(
		`^\s*([^\s()=]+)\s*(?:\(\s*(s)?\s*([+-]?\d+)?\s*(?:=\s*([+-]?\d+))?\s*\))?\s*$`)
	salvagePattern = regexp.MustCompile(`\p{L}[\p{L}\p{N}_]*(?:-[\p{L}\p{N}_]+)*`)
)

// Token is the structured form of Name["(" ["s"] [value] ["=" numeric] ")"].
// Value and Numeric are nil when the token omits them.
type Token struct {
	Name    string
	Stacks  bool
	Value   *int
	Numeric *int
}

// ParseToken splits s into its grammar parts without building a Special
func ParseToken(s string) (Token, error) {
	m := tokenPattern.FindStringSubmatch(s)
	if m == nil {
		return Token{}, errors.InvalidArgumentf("malformed special token %q", s)
	}
	if err := ValidateName(m[1]); err != nil {
		return Token{}, err
	}

	tok := Token{Name: m[1], Stacks: m[2] != ""}
	if m[3] != "" {
		v, err := strconv.Atoi(m[3])
		if err != nil {
			return Token{}, errors.InvalidArgumentf("special %s has an unreadable value %q", m[1], m[3])
		}
		tok.Value = &v
	}
	if m[4] != "" {
		n, err := strconv.Atoi(m[4])
		if err != nil {
			return Token{}, errors.InvalidArgumentf("special %s has an unreadable numeric value %q", m[1], m[4])
		}
		tok.Numeric = &n
	}
	return tok, nil
}

// ValueOr returns the token's value or def when it was omitted
func (t Token) ValueOr(def int) int {
	if t.Value == nil {
		return def
	}
	return *t.Value
}

// Options converts the numeric literal, if any, into construction options
func (t Token) Options() []Option {
	if t.Numeric == nil {
		return nil
	}
	return []Option{WithDerivation(Constant(*t.Numeric))}
}

// Parse builds a special from its textual form. The value defaults to 1.
func Parse(s string) (Special, error) {
	tok, err := ParseToken(s)
	if err != nil {
		return Special{}, err
	}
	return New(tok.Name, tok.ValueOr(1), tok.Stacks, tok.Options()...)
}

// ParseTemplate builds an open-bounded template. Templates carry value 0,
// so an explicit non-zero value is rejected.
func ParseTemplate(s string) (Special, error) {
	tok, err := ParseToken(s)
	if err != nil {
		return Special{}, err
	}
	if v := tok.ValueOr(0); v != 0 {
		return Special{}, errors.InvalidArgumentf("template %s must not carry a value, got %d", tok.Name, v).
			WithMeta(errors.MetaName, tok.Name)
	}
	return NewTemplate(tok.Name, tok.Stacks, tok.Options()...)
}

// ParseLenient is Parse for user-typed text. A malformed token degrades to
// a non-stacking special at value 1 named after the first word that forms
// a valid name. ok is false only when nothing usable remains.
func ParseLenient(s string) (Special, bool) {
	if sp, err := Parse(s); err == nil {
		return sp, true
	}

	name := salvagePattern.FindString(strings.TrimSpace(s))
	if name == "" {
		return Special{}, false
	}
	sp, err := New(name, 1, false)
	if err != nil {
		return Special{}, false
	}
	return sp, true
}
