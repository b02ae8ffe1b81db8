package rwav

import (
	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

// AllocateTwoThirds runs the two-thirds protocol on two identical
// families, guaranteeing each 2/3-democratic 1-of-best-2 fairness.
//
// Starting from the degenerate allocation (∅, everything), the protocol
// repeatedly scans each bundle and moves a good to the other family
// whenever the move helps strictly more poor members than it harms — a
// member is "poor" when it desires the good and its family's bundle gives
// it value 0 (helped side) or exactly 1 (harmed side). The scan repeats at
// most 2·total-members rounds, a proved-sufficient convergence bound for
// identical families, or until a full round makes no change.
//
// Contracts:
//   - len(families) == 2, otherwise ErrFamilyCount.
//   - The families have identical member lists (position-wise equal
//     desired goods and cardinality), otherwise ErrNonIdenticalFamilies.
func AllocateTwoThirds(families []*family.Family, universe []goods.Good, opts Options) (goods.Allocation, error) {
	if len(families) != 2 {
		return nil, ErrFamilyCount
	}
	if !identical(families[0], families[1]) {
		return nil, ErrNonIdenticalFamilies
	}

	bundles := goods.Allocation{goods.NewBundle(), goods.NewBundle(universe...)}
	rounds := 2 * (families[0].NumOfMembers() + families[1].NumOfMembers())
	for round := 0; round < rounds; round++ {
		trace.Printf(opts.Trace, "round %d: %s holds %s, %s holds %s",
			round+1, families[0].Name(), bundles[0], families[1].Name(), bundles[1])
		changed := false
		for side := 0; side < 2; side++ {
			other := 1 - side
			for _, g := range bundles[side].Sorted() {
				helped, err := poorMembers(families[other], g, bundles[other], 0)
				if err != nil {
					return nil, err
				}
				harmed, err := poorMembers(families[side], g, bundles[side], 1)
				if err != nil {
					return nil, err
				}
				if helped > harmed {
					trace.Printf(opts.Trace, "moving %s from %s to %s: helps %d, harms %d",
						g, families[side].Name(), families[other].Name(), helped, harmed)
					bundles[side].Remove(g)
					bundles[other].Add(g)
					changed = true
				}
			}
		}
		if !changed {
			break // fixpoint
		}
	}
	return bundles, nil
}

// poorMembers counts (cardinality-weighted) the members of f who desire g
// and whose value for the family's current bundle equals exactly want.
func poorMembers(f *family.Family, g goods.Good, bundle goods.Bundle, want int) (int, error) {
	return f.CountMembersErr(func(m agent.Agent) (bool, error) {
		if !m.DesiredGoods().Contains(g) {
			return false, nil
		}
		v, err := m.Value(bundle)
		if err != nil {
			return false, err
		}
		return v == want, nil
	})
}

// identical reports whether the two families have position-wise equal
// member lists: same desired goods and same cardinality. Criteria are not
// compared; the protocol's poorness test hard-codes 1-of-best-2.
func identical(f1, f2 *family.Family) bool {
	m1, m2 := f1.Members(), f2.Members()
	if len(m1) != len(m2) {
		return false
	}
	for i := range m1 {
		if m1[i].Cardinality() != m2[i].Cardinality() {
			return false
		}
		if m1[i].DesiredGoods().Key() != m2[i].DesiredGoods().Key() {
			return false
		}
	}
	return true
}
