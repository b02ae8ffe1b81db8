// Package line implements the line protocol: a recursive sweep that
// achieves 1/k-democratic fairness for k families.
//
// The goods are laid out on a line in their input order. A growing left
// prefix is offered to each family in turn; as soon as at least 1/k of a
// family's (cardinality-weighted) members find the prefix fair — per the
// family's own fairness criterion, with the right suffix standing in for
// all other bundles — that family takes the prefix and the remaining k−1
// families recursively re-partition the suffix. A single remaining family
// takes everything unconditionally.
//
// Exhausting the line with no family accepting any prefix violates the
// correctness theorem behind the protocol: it signals an unsupported
// criterion/family-count combination or an implementation defect, and is
// surfaced as ErrProtocolInvariant, never resolved silently.
//
// Errors:
//
//	ErrNoFamilies          - the family list is empty.
//	ErrProtocolInvariant   - no family accepted any prefix of the line.
package line
