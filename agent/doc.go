// Package agent models economic actors with monotone, additive or binary
// preferences over indivisible goods, and provides the envy-freeness,
// proportionality and maximin-share predicates built on those valuations.
//
// An Agent value may represent several identical actors at once: its
// cardinality is the number of copies sharing the same valuation function.
// Protocols weight every member count by cardinality.
//
// Variants:
//
//   - Monotone — an explicit bundle→value map; querying a bundle absent
//     from the map is ErrUndefinedValuation (no interpolation).
//   - Additive — a good→value map; a bundle is worth the sum of its goods.
//   - Binary — a desired-goods set; a bundle is worth the size of its
//     intersection with it.
//
// Derived quantities (value excluding the best/worst c goods, 1-of-c
// maximin share) have closed forms for the additive and binary variants;
// the general monotone paths enumerate C(|bundle|,c) subsets or all
// exactly-c partitions and are exponential — callers must keep the good
// universe small.
//
// Errors:
//
//	ErrUndefinedValuation - a monotone valuation has no entry for a bundle.
//	ErrBadCardinality     - an agent was constructed with cardinality < 1.
//	ErrNegativeValue      - a valuation map contains a negative value.
//	ErrEmptyValuation     - a monotone valuation map has no entries.
package agent
