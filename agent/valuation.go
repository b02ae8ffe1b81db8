package agent

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/partition"
)

// valueExceptC is the general-valuation fallback behind ValueExceptBestC
// (worst=false, take the min) and ValueExceptWorstC (worst=true, take the
// max). It enumerates every exactly-c subset G of b and evaluates
// a.Value(b − G).
//
// Complexity: C(|b|, c) subset evaluations — exponential in c; callers on
// large bundles face combinatorial blow-up by design of the definition.
func valueExceptC(a Agent, b goods.Bundle, c int, worst bool) (int, error) {
	if c <= 0 {
		return a.Value(b)
	}
	if b.Len() <= c {
		return 0, nil
	}
	sorted := b.Sorted()
	extreme := 0
	first := true
	for _, idx := range combin.Combinations(len(sorted), c) {
		rest := b.Clone()
		for _, i := range idx {
			rest.Remove(sorted[i])
		}
		v, err := a.Value(rest)
		if err != nil {
			return 0, err
		}
		if first || (worst && v > extreme) || (!worst && v < extreme) {
			extreme = v
			first = false
		}
	}
	return extreme, nil
}

// mmsByPartitions computes the 1-of-c maximin share by enumerating every
// partition of the agent's desired goods into exactly c blocks and taking
// the maximum over partitions of the minimum block value.
//
// Complexity: S(|desired|, c) partitions (Stirling number); exponential.
func mmsByPartitions(a Agent, c int) (int, error) {
	desired := a.DesiredGoods().Sorted()
	if c < 1 || c > len(desired) {
		return 0, nil
	}
	best := 0
	first := true
	for p := range partition.Exactly(desired, c) {
		worst := 0
		worstSet := false
		for _, block := range p {
			v, err := a.Value(goods.NewBundle(block...))
			if err != nil {
				return 0, err
			}
			if !worstSet || v < worst {
				worst = v
				worstSet = true
			}
		}
		if first || worst > best {
			best = worst
			first = false
		}
	}
	return best, nil
}
