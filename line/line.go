package line

import (
	"errors"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

// Sentinel errors for the line protocol.
var (
	// ErrNoFamilies indicates an empty family list.
	ErrNoFamilies = errors.New("line: at least one family is required")

	// ErrProtocolInvariant indicates the protocol exhausted the good line
	// without any family accepting a prefix. The backing theorem rules this
	// out for the supported criterion/family-count combinations, so it is
	// an internal-consistency failure, not an input error.
	ErrProtocolInvariant = errors.New("line: no family accepted any prefix - theorem precondition violated or implementation defect")
)

// Options configures a protocol run.
type Options struct {
	// Trace receives human-readable progress lines. Nil disables tracing.
	Trace trace.Sink
}

// DefaultOptions returns the canonical silent configuration.
func DefaultOptions() Options {
	return Options{Trace: trace.Discard}
}

// Allocate runs the line protocol on k ≥ 1 families and returns one
// bundle per family, positionally aligned with the input list. The goods
// are swept in the order given; identical inputs always yield identical
// allocations.
//
// Contracts:
//   - len(families) ≥ 1, otherwise ErrNoFamilies.
//   - The returned bundles exactly partition the input goods.
//
// Each recursion level removes one family and a (possibly empty) prefix of
// the line, so the depth is bounded by the family count.
func Allocate(families []*family.Family, universe []goods.Good, opts Options) (goods.Allocation, error) {
	if len(families) == 0 {
		return nil, ErrNoFamilies
	}
	result := make(goods.Allocation, len(families))
	active := make([]int, len(families))
	for i := range active {
		active[i] = i
	}
	if err := sweep(families, active, universe, result, opts.Trace); err != nil {
		return nil, err
	}
	return result, nil
}

// sweep allocates the goods of line among the families indexed by active,
// writing their bundles into result.
func sweep(families []*family.Family, active []int, line []goods.Good, result goods.Allocation, tr trace.Sink) error {
	k := len(active)
	if k == 1 {
		f := families[active[0]]
		trace.Printf(tr, "%s is the last family in contention and gets %s", f.Name(), goods.NewBundle(line...))
		result[active[0]] = goods.NewBundle(line...)
		return nil
	}

	for i := 0; i <= len(line); i++ {
		left := goods.NewBundle(line[:i]...)
		right := goods.NewBundle(line[i:]...)
		trace.Printf(tr, "%s | %s:", left, right)
		for pos, fi := range active {
			f := families[fi]
			happy, err := f.CountMembersErr(func(m agent.Agent) (bool, error) {
				return f.Criterion().IsFairFor(m, left, []goods.Bundle{right})
			})
			if err != nil {
				return err
			}
			trace.Printf(tr, "   %s: %d/%d members find the left bundle fair", f.Name(), happy, f.NumOfMembers())
			if happy*k < f.NumOfMembers() {
				continue
			}
			trace.Printf(tr, "   %s takes the left bundle", f.Name())
			result[fi] = left
			rest := make([]int, 0, k-1)
			rest = append(rest, active[:pos]...)
			rest = append(rest, active[pos+1:]...)
			return sweep(families, rest, line[i:], result, tr)
		}
	}
	return ErrProtocolInvariant
}
