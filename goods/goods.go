package goods

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotAPartition indicates that an allocation's bundles do not form an
// exact partition of the good universe (a good is missing, duplicated
// across bundles, or absent from the universe).
var ErrNotAPartition = errors.New("goods: allocation is not an exact partition of the universe")

// Good is an indivisible item to be allocated. Goods are compared by their
// natural string order; protocols rely on this order for deterministic
// tie-breaking.
type Good string

// Bundle is a set of goods given to one family. The zero value is not
// usable; construct bundles with NewBundle, FromRunes or Clone.
type Bundle map[Good]struct{}

// NewBundle returns a bundle holding the given goods. Duplicates collapse.
func NewBundle(gs ...Good) Bundle {
	b := make(Bundle, len(gs))
	for _, g := range gs {
		b[g] = struct{}{}
	}
	return b
}

// FromRunes interprets each rune of s as one single-character good and
// returns the resulting good slice in string order of s. It mirrors the
// compact "wxyz" notation used throughout the examples.
func FromRunes(s string) []Good {
	out := make([]Good, 0, len(s))
	for _, r := range s {
		out = append(out, Good(r))
	}
	return out
}

// Set builds a bundle directly from rune shorthand: Set("wxyz") is the
// bundle of the four single-character goods w, x, y, z.
func Set(s string) Bundle {
	return NewBundle(FromRunes(s)...)
}

// Add inserts g into the bundle.
func (b Bundle) Add(g Good) { b[g] = struct{}{} }

// Remove deletes g from the bundle. Removing an absent good is a no-op.
func (b Bundle) Remove(g Good) { delete(b, g) }

// Contains reports whether g is in the bundle.
func (b Bundle) Contains(g Good) bool {
	_, ok := b[g]
	return ok
}

// Len returns the number of goods in the bundle.
func (b Bundle) Len() int { return len(b) }

// Clone returns an independent copy of the bundle.
func (b Bundle) Clone() Bundle {
	c := make(Bundle, len(b))
	for g := range b {
		c[g] = struct{}{}
	}
	return c
}

// Union returns a new bundle holding every good of b and other.
func (b Bundle) Union(other Bundle) Bundle {
	u := b.Clone()
	for g := range other {
		u[g] = struct{}{}
	}
	return u
}

// Difference returns a new bundle holding the goods of b not in other.
func (b Bundle) Difference(other Bundle) Bundle {
	d := make(Bundle)
	for g := range b {
		if !other.Contains(g) {
			d[g] = struct{}{}
		}
	}
	return d
}

// Sorted returns the goods of the bundle in ascending order. All
// deterministic iteration in famdiv goes through Sorted.
func (b Bundle) Sorted() []Good {
	out := make([]Good, 0, len(b))
	for g := range b {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a canonical representation of the bundle, usable as a map
// key. Two bundles holding the same goods always produce the same key.
// Good identifiers must not contain the "," separator.
func (b Bundle) Key() string {
	gs := b.Sorted()
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = string(g)
	}
	return strings.Join(parts, ",")
}

// String renders the bundle as {g1,g2,...} in sorted order.
func (b Bundle) String() string {
	return "{" + b.Key() + "}"
}

// Allocation is an ordered list of bundles, positionally aligned with the
// family list that produced it.
type Allocation []Bundle

// Validate checks the exact-partition invariant: the bundles are pairwise
// disjoint and their union equals the universe. Returns ErrNotAPartition
// (wrapped with the offending good) on violation.
func (a Allocation) Validate(universe []Good) error {
	seen := make(Bundle, len(universe))
	for _, b := range a {
		for _, g := range b.Sorted() {
			if seen.Contains(g) {
				return fmt.Errorf("%w: good %q appears in two bundles", ErrNotAPartition, g)
			}
			seen.Add(g)
		}
	}
	for _, g := range universe {
		if !seen.Contains(g) {
			return fmt.Errorf("%w: good %q is unallocated", ErrNotAPartition, g)
		}
		seen.Remove(g)
	}
	if len(seen) != 0 {
		return fmt.Errorf("%w: %d good(s) outside the universe were allocated", ErrNotAPartition, len(seen))
	}
	return nil
}

// String renders the allocation as a list of sorted bundles.
func (a Allocation) String() string {
	parts := make([]string, len(a))
	for i, b := range a {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
