package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/famdiv/famdiv/goods"
)

// Additive represents agents whose value for a bundle is the sum of
// per-good values. Goods absent from the valuation map are worth 0, so
// Value is total over any bundle.
type Additive struct {
	base
	values map[goods.Good]int
}

// NewAdditive builds an additive agent from a map of single-good values.
// The desired-goods set is the set of goods with strictly positive value.
//
// Errors: ErrNegativeValue, ErrBadCardinality.
func NewAdditive(valuation map[goods.Good]int, cardinality int) (*Additive, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}
	values := make(map[goods.Good]int, len(valuation))
	desired := goods.NewBundle()
	total := 0
	for g, v := range valuation {
		if v < 0 {
			return nil, fmt.Errorf("%w: good %q has value %d", ErrNegativeValue, g, v)
		}
		values[g] = v
		if v > 0 {
			desired.Add(g)
			total += v
		}
	}
	return &Additive{
		base: base{
			desired:     desired,
			total:       total,
			cardinality: cardinality,
		},
		values: values,
	}, nil
}

// Value sums the per-good values of the bundle. Never fails.
func (a *Additive) Value(b goods.Bundle) (int, error) {
	sum := 0
	for g := range b {
		sum += a.values[g]
	}
	return sum, nil
}

// ValueExceptBestC drops the c most valuable goods of the bundle — the
// additive closed form of the min-over-subsets definition. O(|b| log |b|).
func (a *Additive) ValueExceptBestC(b goods.Bundle, c int) (int, error) {
	return a.valueDropping(b, c, true)
}

// ValueExceptWorstC drops the c least valuable goods of the bundle —
// the additive closed form of the max-over-subsets definition.
func (a *Additive) ValueExceptWorstC(b goods.Bundle, c int) (int, error) {
	return a.valueDropping(b, c, false)
}

func (a *Additive) valueDropping(b goods.Bundle, c int, best bool) (int, error) {
	if c <= 0 {
		return a.Value(b)
	}
	if b.Len() <= c {
		return 0, nil
	}
	sorted := b.Sorted() // good-order base keeps the sort deterministic
	sort.SliceStable(sorted, func(i, j int) bool {
		if best {
			return a.values[sorted[i]] > a.values[sorted[j]]
		}
		return a.values[sorted[i]] < a.values[sorted[j]]
	})
	sum := 0
	for _, g := range sorted[c:] {
		sum += a.values[g]
	}
	return sum, nil
}

// Value1OfCMMS enumerates all exactly-c partitions of the desired goods.
func (a *Additive) Value1OfCMMS(c int) (int, error) {
	return mmsByPartitions(a, c)
}

// String describes the agent for display purposes.
func (a *Additive) String() string {
	gs := make([]goods.Good, 0, len(a.values))
	for g := range a.values {
		gs = append(gs, g)
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i] < gs[j] })
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = fmt.Sprintf("%s=%d", g, a.values[g])
	}
	return fmt.Sprintf("%d agent%s with additive valuations: %s",
		a.cardinality, plural(a.cardinality), strings.Join(parts, " "))
}
