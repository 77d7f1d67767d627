// Package roll holds the immutable outcome of a resolved roll.
package roll

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
)

// Result is a completed roll: the total, the rendered faces in draw order,
// and the merged specials. It is never modified after construction.
type Result struct {
	value    int
	rolls    []string
	specials []special.Special
}

// NewResult copies its inputs and stores specials in canonical form
func NewResult(value int, rolls []string, specials []special.Special) *Result {
	r := &Result{
		value:    value,
		rolls:    slices.Clone(rolls),
		specials: special.Combine(specials...),
	}
	if r.rolls == nil {
		r.rolls = []string{}
	}
	return r
}

// Value returns the roll total
func (r *Result) Value() int {
	return r.value
}

// Rolls returns a copy of the rendered faces
func (r *Result) Rolls() []string {
	return slices.Clone(r.rolls)
}

// Specials returns a copy of the merged, name-sorted specials
func (r *Result) Specials() []special.Special {
	return slices.Clone(r.specials)
}

// Special returns the merged special with the given name
func (r *Result) Special(name string) (special.Special, bool) {
	for _, s := range r.specials {
		if s.Name() == name {
			return s, true
		}
	}
	return special.Special{}, false
}

// SpecialsText joins the non-empty display texts of the specials,
// escaped, as "a", "a and b" or "a, b and c".
func (r *Result) SpecialsText() string {
	texts := make([]string, 0, len(r.specials))
	for _, s := range r.specials {
		if t := s.Text(); t != "" {
			texts = append(texts, Escape(t))
		}
	}
	return joinAnd(texts)
}

// String renders "<value>[ with <specials>] [<rolls>]"
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.value))
	if text := r.SpecialsText(); text != "" {
		b.WriteString(" with ")
		b.WriteString(text)
	}
	b.WriteString(" [")
	for i, roll := range r.rolls {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Escape(roll))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal compares value, rolls and specials structurally
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.value != o.value || !slices.Equal(r.rolls, o.rolls) {
		return false
	}
	return slices.EqualFunc(r.specials, o.specials, special.Special.Equal)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `'`, `\'`)

// Escape backslash-escapes backslashes and both quote characters
func Escape(s string) string {
	return escaper.Replace(s)
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
