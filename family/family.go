package family

import (
	"errors"
	"fmt"
	"strings"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/goods"
)

// Sentinel errors for family construction.
var (
	// ErrNoMembers indicates an empty member list.
	ErrNoMembers = errors.New("family: at least one member is required")

	// ErrNoCriterion indicates a nil fairness criterion.
	ErrNoCriterion = errors.New("family: a fairness criterion is required")
)

// Family is an ordered group of agents bound to one fairness criterion.
// Two Family values are logically independent even when built from the
// same member list.
type Family struct {
	members   []agent.Agent
	criterion criteria.Criterion
	name      string
	numOf     int
}

// New builds a family from the given members, binds the criterion (each
// member's target value is set from its total value, once), and fixes the
// display name.
func New(members []agent.Agent, criterion criteria.Criterion, name string) (*Family, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	if criterion == nil {
		return nil, ErrNoCriterion
	}
	f := &Family{
		members:   append([]agent.Agent(nil), members...),
		criterion: criterion,
		name:      name,
	}
	for _, m := range f.members {
		m.SetTargetValue(criterion.TargetValue(m.TotalValue()))
		f.numOf += m.Cardinality()
	}
	return f, nil
}

// Members returns the family's member list in construction order.
// Callers must not mutate it.
func (f *Family) Members() []agent.Agent { return f.members }

// Criterion returns the bound fairness criterion.
func (f *Family) Criterion() criteria.Criterion { return f.criterion }

// Name returns the display name.
func (f *Family) Name() string { return f.name }

// NumOfMembers is the sum of member cardinalities.
func (f *Family) NumOfMembers() int { return f.numOf }

// CountMembers returns the cardinality-weighted count of members
// satisfying the predicate.
func (f *Family) CountMembers(pred func(agent.Agent) bool) int {
	n := 0
	for _, m := range f.members {
		if pred(m) {
			n += m.Cardinality()
		}
	}
	return n
}

// CountMembersErr is CountMembers for error-returning predicates; the
// first predicate error aborts the count.
func (f *Family) CountMembersErr(pred func(agent.Agent) (bool, error)) (int, error) {
	n := 0
	for _, m := range f.members {
		ok, err := pred(m)
		if err != nil {
			return 0, err
		}
		if ok {
			n += m.Cardinality()
		}
	}
	return n, nil
}

// HappyMembers returns the cardinality-weighted count of members whose
// bound criterion deems the family's own bundle fair within the full
// allocation.
func (f *Family) HappyMembers(own goods.Bundle, all []goods.Bundle) (int, error) {
	return f.CountMembersErr(func(m agent.Agent) (bool, error) {
		return f.criterion.IsFairFor(m, own, all)
	})
}

// AllocationDescription renders the family's outcome under the given
// allocation, including its happy-member tally.
func (f *Family) AllocationDescription(own goods.Bundle, all []goods.Bundle) (string, error) {
	happy, err := f.HappyMembers(own, all)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: allocated bundle = %s, happy members = %d/%d",
		f.name, own, happy, f.numOf), nil
}

// String lists the family's members.
func (f *Family) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s seeks %s and has:", f.name, f.criterion)
	for _, m := range f.members {
		fmt.Fprintf(&sb, "\n * %s", m)
	}
	return sb.String()
}
