package special

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

// MergeInto folds incoming into the name-sorted list and returns the
// updated list. The input slice is never modified.
//
// When the name is already present the existing entry decides first: if it
// stacks, incoming's value is added to it. Otherwise a stacking incoming
// absorbs the existing value. When neither stacks the existing entry is
// kept and incoming is dropped.
func MergeInto(list []Special, incoming Special) []Special {
	i, found := slices.BinarySearchFunc(list, incoming.name, func(s Special, name string) int {
		return strings.Compare(s.name, name)
	})

	if !found {
		out := make([]Special, 0, len(list)+1)
		out = append(out, list[:i]...)
		out = append(out, incoming)
		out = append(out, list[i:]...)
		checkInsert(list, out, i)
		return out
	}

	existing := list[i]
	var merged Special
	switch {
	case existing.stacks:
		merged = existing.Stacked(incoming.value)
	case incoming.stacks:
		merged = incoming.Stacked(existing.value)
	default:
		return slices.Clone(list)
	}

	out := slices.Clone(list)
	out[i] = merged
	checkReplace(list, out, i)
	return out
}

// MergeAll folds every element of incoming into list, in order
func MergeAll(list []Special, incoming []Special) []Special {
	out := slices.Clone(list)
	for _, s := range incoming {
		out = MergeInto(out, s)
	}
	return out
}

// Combine returns the canonical merged form of an arbitrary collection
func Combine(specials ...Special) []Special {
	return MergeAll(nil, specials)
}

// NumericTotal sums the numeric values of specials that have one
func NumericTotal(specials []Special) int {
	total := 0
	for _, s := range specials {
		if n, ok := s.NumericValue(); ok {
			total += n
		}
	}
	return total
}

func checkInsert(before, after []Special, at int) {
	if len(after) != len(before)+1 {
		panic(errors.Internalf("merge insert of %s changed length from %d to %d",
			after[at].name, len(before), len(after)).WithMeta(errors.MetaName, after[at].name))
	}
	checkOrder(after)
}

func checkReplace(before, after []Special, at int) {
	if len(after) != len(before) || after[at].name != before[at].name {
		panic(errors.Internalf("merge replace at %d did not keep %s in place", at, before[at].name).
			WithMeta(errors.MetaName, before[at].name))
	}
}

func checkOrder(list []Special) {
	for i := 1; i < len(list); i++ {
		if list[i-1].name >= list[i].name {
			panic(errors.Internalf("special list out of order at %d: %s before %s",
				i, list[i-1].name, list[i].name))
		}
	}
}

// List is a name-sorted, collision-free collection of specials. The zero
// value is an empty list ready to use. It is not safe for concurrent use.
type List struct {
	items []Special
}

// NewList returns the combined form of specials
func NewList(specials ...Special) *List {
	return &List{items: Combine(specials...)}
}

// Merge folds s into the list
func (l *List) Merge(s Special) {
	l.items = MergeInto(l.items, s)
}

// MergeAll folds every special into the list, in order
func (l *List) MergeAll(specials []Special) {
	l.items = MergeAll(l.items, specials)
}

// Get returns the special stored under name
func (l *List) Get(name string) (Special, bool) {
	i, found := slices.BinarySearchFunc(l.items, name, func(s Special, name string) int {
		return strings.Compare(s.name, name)
	})
	if !found {
		return Special{}, false
	}
	return l.items[i], true
}

// Len returns the number of distinct specials
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the sorted specials
func (l *List) Items() []Special {
	return slices.Clone(l.items)
}

// Clone returns an independent copy of the list
func (l *List) Clone() *List {
	return &List{items: slices.Clone(l.items)}
}

// NumericTotal sums the numeric values of every special in the list
func (l *List) NumericTotal() int {
	return NumericTotal(l.items)
}

// String renders the specials in canonical form, space separated
func (l *List) String() string {
	parts := make([]string, len(l.items))
	for i, s := range l.items {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
