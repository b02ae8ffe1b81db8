// Package family groups agents into named families sharing one collective
// bundle and one fairness criterion.
//
// Constructing a family binds its criterion: each member's target value is
// computed once from the member's total value and written onto the member
// record. Happiness counts are always cardinality-weighted.
//
// Errors:
//
//	ErrNoMembers   - a family needs at least one member.
//	ErrNoCriterion - a family needs a fairness criterion.
package family
