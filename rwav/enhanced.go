package rwav

import (
	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

// AllocateEnhanced runs the enhanced RWAV protocol on exactly two
// families: if some single good is desired by at least threshold·members
// of one family, that family receives the good, the other family receives
// everything else, and the turn loop is skipped entirely. Otherwise it
// falls through to Allocate.
//
// Goods are scanned in natural order and family 1's threshold is tested
// before family 2's for each good, so simultaneous crossings resolve
// deterministically.
//
// Contracts:
//   - len(families) == 2, otherwise ErrFamilyCount.
//   - 0 ≤ threshold ≤ 1, otherwise ErrBadThreshold.
func AllocateEnhanced(families []*family.Family, universe []goods.Good, threshold float64, opts Options) (goods.Allocation, error) {
	if len(families) != 2 {
		return nil, ErrFamilyCount
	}
	if threshold < 0 || threshold > 1 {
		return nil, ErrBadThreshold
	}

	all := goods.NewBundle(universe...)
	limits := [2]float64{
		threshold * float64(families[0].NumOfMembers()),
		threshold * float64(families[1].NumOfMembers()),
	}
	for _, g := range all.Sorted() {
		for fi, f := range families {
			want := f.CountMembers(func(m agent.Agent) bool {
				return m.DesiredGoods().Contains(g)
			})
			if float64(want) < limits[fi] {
				continue
			}
			trace.Printf(opts.Trace, "%d of %d members in %s want %s, so %s gets %s and the other family gets the rest",
				want, f.NumOfMembers(), f.Name(), g, f.Name(), g)
			single := goods.NewBundle(g)
			rest := all.Difference(single)
			if fi == 0 {
				return goods.Allocation{single, rest}, nil
			}
			return goods.Allocation{rest, single}, nil
		}
	}
	trace.Printf(opts.Trace, "no good crosses the %g threshold; falling back to the turn loop", threshold)
	return Allocate(families, universe, opts)
}
