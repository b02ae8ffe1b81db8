// Package rwav implements the RWAV protocol — Round-Robin with Approval
// Voting — and its enhanced and two-thirds variants, for allocating
// indivisible goods between two families of agents.
//
// Core loop: the two families alternate turns; on its turn a family picks
// one remaining good by weighted approval voting. Each member's vote
// weight w(r,s) derives from the balance recurrence
//
//	B(r,s) = 1                                        if s ≤ 0
//	B(r,s) = 0                                        if s > r
//	B(r,s) = min((B(r−1,s)+B(r−1,s−1))/2, B(r−2,s−1)) otherwise
//	w(r,s) = B(r,s) − B(r−1,s)
//
// where r is the member's value for the remaining goods and s its unmet
// target. The recurrence is memoized in an explicit WeightTable — the same
// (r,s) pairs recur across members, turns and families, and recomputation
// without the table is exponential in the number of goods.
//
// Determinism: candidate goods tie-break to the smallest good in natural
// order; the enhanced variant scans goods in natural order and tests
// family 1's threshold before family 2's.
//
// Errors:
//
//	ErrFamilyCount          - a variant was invoked with other than 2 families.
//	ErrNonIdenticalFamilies - AllocateTwoThirds requires two identical families.
//	ErrBadThreshold         - the enhanced threshold is outside [0,1].
package rwav
