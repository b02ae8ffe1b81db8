package agent

import (
	"github.com/famdiv/famdiv/goods"
)

// The predicates below are pure boolean fairness tests over one agent and
// a candidate allocation. Envy-family predicates compare the agent's own
// bundle against every other bundle; proportionality and maximin-share
// predicates compare it against the agent's total value. All of them
// propagate valuation errors (possible only for monotone agents).

// IsEFc reports whether the agent finds the allocation envy-free except
// for the best c goods: its value for its own bundle is at least every
// other bundle's value after that bundle's best c goods are removed.
func IsEFc(a Agent, own goods.Bundle, all []goods.Bundle, c int) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	for _, other := range all {
		otherValue, err := a.ValueExceptBestC(other, c)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}
	return true, nil
}

// IsEF1 is IsEFc with c = 1.
func IsEF1(a Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	return IsEFc(a, own, all, 1)
}

// IsEFx reports envy-freeness except for the worst good: the agent's own
// value is at least every other bundle's value after that bundle's worst
// good is removed.
func IsEFx(a Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	for _, other := range all {
		otherValue, err := a.ValueExceptWorstC(other, 1)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}
	return true, nil
}

// IsEF reports full envy-freeness: the agent values its own bundle at
// least as much as every other bundle.
func IsEF(a Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	for _, other := range all {
		otherValue, err := a.Value(other)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}
	return true, nil
}

// Is1OfCMMS reports whether the agent's own bundle is worth at least
// approximationFactor times its 1-of-c maximin share.
func Is1OfCMMS(a Agent, own goods.Bundle, c int, approximationFactor float64) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	mms, err := a.Value1OfCMMS(c)
	if err != nil {
		return false, err
	}
	return float64(ownValue) >= approximationFactor*float64(mms), nil
}

// IsPROP reports proportionality among numAgents agents: the agent's own
// bundle is worth at least 1/numAgents of its total value.
func IsPROP(a Agent, own goods.Bundle, numAgents int) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	return ownValue*numAgents >= a.TotalValue(), nil
}

// IsPROPc reports proportionality except the best c goods: the agent's own
// bundle is worth at least 1/numAgents of its desired goods' value after
// the best c of them are removed.
func IsPROPc(a Agent, own goods.Bundle, numAgents, c int) (bool, error) {
	ownValue, err := a.Value(own)
	if err != nil {
		return false, err
	}
	totalExceptBestC, err := a.ValueExceptBestC(a.DesiredGoods(), c)
	if err != nil {
		return false, err
	}
	return ownValue*numAgents >= totalExceptBestC, nil
}
