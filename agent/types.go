package agent

import (
	"errors"

	"github.com/famdiv/famdiv/goods"
)

// Sentinel errors for agent construction and valuation queries.
var (
	// ErrUndefinedValuation indicates a monotone agent was asked for the
	// value of a bundle absent from its explicit valuation map.
	ErrUndefinedValuation = errors.New("agent: bundle value not specified in the valuation function")

	// ErrBadCardinality indicates a non-positive cardinality.
	ErrBadCardinality = errors.New("agent: cardinality must be at least 1")

	// ErrNegativeValue indicates a negative value in a valuation map.
	ErrNegativeValue = errors.New("agent: valuations must be nonnegative")

	// ErrEmptyValuation indicates an empty monotone valuation map.
	ErrEmptyValuation = errors.New("agent: monotone valuation map must not be empty")
)

// Agent represents one or more identical economic actors sharing one
// valuation function. Value queries may fail only for the monotone
// variant; additive and binary valuations are total.
//
// TargetValue is not an intrinsic property: it is written once when a
// Family binds a fairness criterion to its members, and read by the
// allocation protocols afterwards.
type Agent interface {
	// Value returns the agent's value for the given bundle.
	Value(b goods.Bundle) (int, error)

	// ValueExceptBestC returns min over all exactly-c subsets G of b of
	// Value(b − G); 0 when b has at most c goods. It is the EFc subroutine.
	ValueExceptBestC(b goods.Bundle, c int) (int, error)

	// ValueExceptWorstC returns max over all exactly-c subsets G of b of
	// Value(b − G); 0 when b has at most c goods. It is the EFx subroutine.
	ValueExceptWorstC(b goods.Bundle, c int) (int, error)

	// Value1OfCMMS returns the 1-of-c maximin share: the best value the
	// agent can guarantee by partitioning its desired goods into c bundles
	// and receiving the worst one. 0 when c exceeds the desired-good count.
	Value1OfCMMS(c int) (int, error)

	// DesiredGoods returns the set of goods the agent assigns positive
	// marginal value to. Callers must not mutate it.
	DesiredGoods() goods.Bundle

	// TotalValue is the value of the full desired-goods set, fixed at
	// construction.
	TotalValue() int

	// Cardinality is the number of identical actors this record stands for.
	Cardinality() int

	// TargetValue reports the value this agent needs in order to consider
	// an allocation fair, as assigned by its family's criterion.
	TargetValue() float64

	// SetTargetValue records the criterion-derived target value.
	SetTargetValue(v float64)

	// String describes the agent for display purposes.
	String() string
}

// base carries the attributes shared by all agent variants.
type base struct {
	desired     goods.Bundle
	total       int
	cardinality int
	target      float64
}

func (b *base) DesiredGoods() goods.Bundle { return b.desired }
func (b *base) TotalValue() int            { return b.total }
func (b *base) Cardinality() int           { return b.cardinality }
func (b *base) TargetValue() float64       { return b.target }
func (b *base) SetTargetValue(v float64)   { b.target = v }

// BestIndex returns the index of the most-valuable bundle of the partition
// for the given agent. Ties resolve to the lowest index.
func BestIndex(a Agent, partition []goods.Bundle) (int, error) {
	best, bestValue := 0, 0
	for i, b := range partition {
		v, err := a.Value(b)
		if err != nil {
			return 0, err
		}
		if i == 0 || v > bestValue {
			best, bestValue = i, v
		}
	}
	return best, nil
}

// plural is a display helper: "1 agent", "2 agents".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
