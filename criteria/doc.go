// Package criteria defines the closed set of family-level fairness
// criteria used by the allocation protocols.
//
// A criterion is stateless besides its parameters. Threshold-style
// criteria (OneOfBestC, MaximinShareOneOfC, ProportionalExceptC) derive a
// target value from an agent's total value; an agent is then fair exactly
// when its value for its family's bundle reaches the target. The
// envy-based criterion (EnvyFreeExceptC) ignores the target abstraction —
// envy is inherently relative to the other bundles — and delegates to the
// agent's own EFc predicate.
//
// Target-value formulas, for an agent with total value r:
//
//	OneOfBestC(c)              1 if r ≥ c, else 0
//	MaximinShareOneOfC(c, α)   floor(r/c)·α
//	EnvyFreeExceptC(c)         (delegates to IsEFc)
//	ProportionalExceptC(c, n)  max(0, ceil((r−c)/n))
package criteria
