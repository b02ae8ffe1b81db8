package plurality

import (
	"errors"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

// ErrVertexShape indicates that a supplied partition or subsimplex vertex
// does not have exactly one bundle per family.
var ErrVertexShape = errors.New("plurality: every partition must hold exactly one bundle per family")

// Options configures a protocol run.
type Options struct {
	// Trace receives human-readable progress lines. Nil disables tracing.
	Trace trace.Sink
}

// DefaultOptions returns the canonical silent configuration.
func DefaultOptions() Options {
	return Options{Trace: trace.Discard}
}

// BestIndexByPlurality returns the index of the bundle preferred by a
// plurality of the family's cardinality-weighted members. Member-level
// ties resolve to the lowest index, and so does the family-level winner.
func BestIndexByPlurality(f *family.Family, partition []goods.Bundle, opts Options) (int, error) {
	votes := make([]int, len(partition))
	for _, m := range f.Members() {
		best, err := agent.BestIndex(m, partition)
		if err != nil {
			return 0, err
		}
		votes[best] += m.Cardinality()
	}
	winner := 0
	for i, v := range votes {
		if v > votes[winner] {
			winner = i
		}
	}
	trace.Printf(opts.Trace, "%s: votes=%v, winner=partition[%d]=%s", f.Name(), votes, winner, partition[winner])
	return winner, nil
}

// FindEnvyFreeAllocation lets the k families vote over one shared
// k-partition and permutes the partition so that each family receives the
// bundle it voted for. When two families vote for the same bundle no
// envy-free permutation exists: ok is false and the allocation nil.
//
// Contracts: len(partition) == len(families), otherwise ErrVertexShape.
func FindEnvyFreeAllocation(families []*family.Family, partition []goods.Bundle, opts Options) (alloc goods.Allocation, ok bool, err error) {
	if len(partition) != len(families) {
		return nil, false, ErrVertexShape
	}
	winners, ok, err := distinctWinners(families, func(int) []goods.Bundle { return partition }, opts.Trace)
	if err != nil || !ok {
		return nil, false, err
	}
	alloc = make(goods.Allocation, len(families))
	for i, w := range winners {
		alloc[i] = partition[w].Clone()
	}
	return alloc, true, nil
}

// FindEF2Allocation lets family i vote within vertices[i], its designated
// subsimplex vertex, and — when all winning indices are distinct — awards
// family i the union across all vertices of the sub-bundle at its winning
// index. A vote collision means no envy-free permutation exists: ok is
// false and the allocation nil.
//
// Contracts: len(vertices) == len(families) and every vertex holds exactly
// one bundle per family, otherwise ErrVertexShape.
func FindEF2Allocation(families []*family.Family, vertices [][]goods.Bundle, opts Options) (alloc goods.Allocation, ok bool, err error) {
	k := len(families)
	if len(vertices) != k {
		return nil, false, ErrVertexShape
	}
	for _, vertex := range vertices {
		if len(vertex) != k {
			return nil, false, ErrVertexShape
		}
	}
	winners, ok, err := distinctWinners(families, func(i int) []goods.Bundle { return vertices[i] }, opts.Trace)
	if err != nil || !ok {
		return nil, false, err
	}
	alloc = make(goods.Allocation, k)
	for i, w := range winners {
		alloc[i] = goods.NewBundle()
		for _, vertex := range vertices {
			alloc[i] = alloc[i].Union(vertex[w])
		}
	}
	return alloc, true, nil
}

// distinctWinners collects each family's plurality winner over its own
// ballot, failing the ok flag on the first collision.
func distinctWinners(families []*family.Family, ballot func(i int) []goods.Bundle, tr trace.Sink) ([]int, bool, error) {
	winners := make([]int, len(families))
	taken := make(map[int]bool, len(families))
	for i, f := range families {
		w, err := BestIndexByPlurality(f, ballot(i), Options{Trace: tr})
		if err != nil {
			return nil, false, err
		}
		if taken[w] {
			trace.Printf(tr, "two families vote for index %d - no permutation is plurality envy-free", w)
			return nil, false, nil
		}
		taken[w] = true
		winners[i] = w
	}
	return winners, true, nil
}
