package rwav

import (
	"math"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

// Allocate runs the RWAV protocol on exactly two families and returns one
// bundle per family, positionally aligned with the input list.
//
// The families alternate turns starting with families[0]; on each turn the
// active family adds the remaining good with the highest total approval
// weight to its bundle. Ties break to the smallest good in natural order,
// so the result is fully deterministic.
//
// Contracts:
//   - len(families) == 2, otherwise ErrFamilyCount.
//   - The returned bundles exactly partition the input goods.
//
// Complexity: O(|goods|² · members) value queries plus the memoized
// balance recurrence.
func Allocate(families []*family.Family, universe []goods.Good, opts Options) (goods.Allocation, error) {
	if len(families) != 2 {
		return nil, ErrFamilyCount
	}
	remaining := goods.NewBundle(universe...)
	bundles := goods.Allocation{goods.NewBundle(), goods.NewBundle()}
	weights := NewWeightTable()

	turn := 0
	for fi := 0; remaining.Len() > 0; fi = 1 - fi {
		turn++
		f := families[fi]
		trace.Printf(opts.Trace, "Turn #%d: %s's turn to pick a good from %s:", turn, f.Name(), remaining)
		g, err := chooseGood(f, bundles[fi], remaining, weights, opts.Trace)
		if err != nil {
			return nil, err
		}
		trace.Printf(opts.Trace, "%s picks %s", f.Name(), g)
		bundles[fi].Add(g)
		remaining.Remove(g)
	}
	return bundles, nil
}

// chooseGood selects the good the family takes from the remaining pool by
// weighted approval voting: every member contributes weight·cardinality to
// each good it desires, and the remaining good with the maximum total
// wins, smallest good first on ties.
func chooseGood(f *family.Family, owned, remaining goods.Bundle, weights *WeightTable, tr trace.Sink) (goods.Good, error) {
	totals := make(map[goods.Good]float64)
	trace.Printf(tr, "  member weights (desired / r / s / weight):")
	for _, m := range f.Members() {
		w, err := memberWeight(m, owned, remaining, weights, tr)
		if err != nil {
			return "", err
		}
		for g := range m.DesiredGoods() {
			totals[g] += w * float64(m.Cardinality())
		}
	}

	candidates := remaining.Sorted()
	best := candidates[0]
	for _, g := range candidates {
		trace.Printf(tr, "  good %s weight %g", g, totals[g])
		if totals[g] > totals[best] {
			best = g
		}
	}
	return best, nil
}

// memberWeight computes one member's vote weight: r is its value for the
// remaining goods, s its yet-unmet target given the goods its family
// already holds.
func memberWeight(m agent.Agent, owned, remaining goods.Bundle, weights *WeightTable, tr trace.Sink) (float64, error) {
	r, err := m.Value(remaining)
	if err != nil {
		return 0, err
	}
	current, err := m.Value(owned)
	if err != nil {
		return 0, err
	}
	s := int(math.Ceil(m.TargetValue() - float64(current)))
	w := weights.Weight(r, s)
	trace.Printf(tr, "    %d member(s) %s  r=%d s=%d w=%g", m.Cardinality(), m.DesiredGoods(), r, s, w)
	return w, nil
}
