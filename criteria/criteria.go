package criteria

import (
	"fmt"
	"math"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/goods"
)

// Criterion converts an agent's total value into a fairness target, and a
// candidate allocation into a per-agent fairness verdict.
type Criterion interface {
	// TargetValue maps an agent's total value to the value the agent needs
	// in order to consider an allocation fair.
	TargetValue(totalValue int) float64

	// IsFairFor reports whether the agent deems its family's own bundle
	// fair within the full allocation. Valuation errors propagate.
	IsFairFor(a agent.Agent, own goods.Bundle, all []goods.Bundle) (bool, error)

	// String names the criterion for display purposes.
	String() string
}

// thresholdFair is the default verdict for target-style criteria:
// value(own) ≥ target(totalValue).
func thresholdFair(c Criterion, a agent.Agent, own goods.Bundle) (bool, error) {
	v, err := a.Value(own)
	if err != nil {
		return false, err
	}
	return float64(v) >= c.TargetValue(a.TotalValue()), nil
}

// OneOfBestC is satisfied by one good out of the agent's best c: the
// target is a single desired good whenever the agent desires at least c.
type OneOfBestC struct {
	C int
}

// TargetValue returns 1 if totalValue ≥ c, else 0.
func (o OneOfBestC) TargetValue(totalValue int) float64 {
	if totalValue >= o.C {
		return 1
	}
	return 0
}

func (o OneOfBestC) IsFairFor(a agent.Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	return thresholdFair(o, a, own)
}

func (o OneOfBestC) String() string { return fmt.Sprintf("1-of-best-%d", o.C) }

// MaximinShareOneOfC targets Alpha times the binary 1-of-c maximin share
// floor(totalValue/c). Alpha ≤ 0 is treated as the exact share (α = 1).
type MaximinShareOneOfC struct {
	C     int
	Alpha float64
}

func (m MaximinShareOneOfC) alpha() float64 {
	if m.Alpha <= 0 {
		return 1
	}
	return m.Alpha
}

// TargetValue returns floor(totalValue/c)·α.
func (m MaximinShareOneOfC) TargetValue(totalValue int) float64 {
	return math.Floor(float64(totalValue)/float64(m.C)) * m.alpha()
}

func (m MaximinShareOneOfC) IsFairFor(a agent.Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	return thresholdFair(m, a, own)
}

func (m MaximinShareOneOfC) String() string {
	if m.alpha() != 1 {
		return fmt.Sprintf("%.3g-fraction 1-of-%d maximin-share", m.alpha(), m.C)
	}
	return fmt.Sprintf("1-of-%d maximin-share", m.C)
}

// EnvyFreeExceptC is satisfied when the agent finds the allocation EFc.
// Target values play no role: envy is relative to the other bundles.
type EnvyFreeExceptC struct {
	C int
}

// TargetValue is 0; EFc has no meaningful threshold target.
func (e EnvyFreeExceptC) TargetValue(totalValue int) float64 { return 0 }

func (e EnvyFreeExceptC) IsFairFor(a agent.Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	return agent.IsEFc(a, own, all, e.C)
}

func (e EnvyFreeExceptC) String() string { return fmt.Sprintf("envy-free-except-%d", e.C) }

// ProportionalExceptC targets a 1/NumAgents share of the agent's total
// value, discounted by the c best goods.
type ProportionalExceptC struct {
	C         int
	NumAgents int
}

// TargetValue returns max(0, ceil((totalValue−c)/n)).
func (p ProportionalExceptC) TargetValue(totalValue int) float64 {
	t := math.Ceil(float64(totalValue-p.C) / float64(p.NumAgents))
	if t < 0 {
		return 0
	}
	return t
}

func (p ProportionalExceptC) IsFairFor(a agent.Agent, own goods.Bundle, all []goods.Bundle) (bool, error) {
	return thresholdFair(p, a, own)
}

func (p ProportionalExceptC) String() string {
	return fmt.Sprintf("proportional-except-%d among %d", p.C, p.NumAgents)
}
