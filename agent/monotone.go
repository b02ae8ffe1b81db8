package agent

import (
	"fmt"

	"github.com/famdiv/famdiv/goods"
)

// Monotone represents agents with a general monotone valuation given by an
// explicit map from bundles to values. Only the listed bundles have a
// defined value; querying any other bundle is ErrUndefinedValuation.
type Monotone struct {
	base
	values map[string]int // canonical bundle key -> value
}

// NewMonotone builds a monotone agent from a valuation map whose keys are
// rune-shorthand bundles ("xy" is the bundle {x,y}). The empty bundle is
// normalized to value 0 whether or not it is listed. The desired-goods set
// is the arg-max bundle of the map; value ties resolve to the bundle with
// the smallest canonical key.
//
// Errors: ErrEmptyValuation, ErrNegativeValue, ErrBadCardinality.
func NewMonotone(valuation map[string]int, cardinality int) (*Monotone, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}
	if len(valuation) == 0 {
		return nil, ErrEmptyValuation
	}
	values := make(map[string]int, len(valuation)+1)
	var desired goods.Bundle
	var bestKey string
	bestValue, haveBest := 0, false
	for shorthand, v := range valuation {
		if v < 0 {
			return nil, fmt.Errorf("%w: bundle %q has value %d", ErrNegativeValue, shorthand, v)
		}
		bundle := goods.Set(shorthand)
		key := bundle.Key()
		values[key] = v
		if !haveBest || v > bestValue || (v == bestValue && key < bestKey) {
			desired, bestKey, bestValue, haveBest = bundle, key, v, true
		}
	}
	values[""] = 0 // normalization: the empty bundle is always worth 0
	return &Monotone{
		base: base{
			desired:     desired,
			total:       bestValue,
			cardinality: cardinality,
		},
		values: values,
	}, nil
}

// Value looks the bundle up in the explicit valuation map.
func (m *Monotone) Value(b goods.Bundle) (int, error) {
	v, ok := m.values[b.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedValuation, b)
	}
	return v, nil
}

// ValueExceptBestC enumerates all C(|b|,c) subsets; see valueExceptC.
func (m *Monotone) ValueExceptBestC(b goods.Bundle, c int) (int, error) {
	return valueExceptC(m, b, c, false)
}

// ValueExceptWorstC enumerates all C(|b|,c) subsets; see valueExceptC.
func (m *Monotone) ValueExceptWorstC(b goods.Bundle, c int) (int, error) {
	return valueExceptC(m, b, c, true)
}

// Value1OfCMMS enumerates all exactly-c partitions of the desired goods.
// Every block of every partition must be present in the valuation map, or
// ErrUndefinedValuation propagates.
func (m *Monotone) Value1OfCMMS(c int) (int, error) {
	return mmsByPartitions(m, c)
}

// String describes the agent for display purposes.
func (m *Monotone) String() string {
	return fmt.Sprintf("%d agent%s with monotone valuations. Desired goods: %s",
		m.cardinality, plural(m.cardinality), m.desired)
}
