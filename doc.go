// Package famdiv is an in-memory toolkit for democratic fair division:
// allocating indivisible goods among families — groups of agents that must
// share one collective bundle — under per-family fairness criteria.
//
// 🚀 What is famdiv?
//
//	A deterministic, single-threaded library that brings together:
//		• Agent valuations: monotone, additive and binary preference models
//		• Fairness predicates: EF, EF1, EFx, EFc, PROP, PROPc, 1-of-c MMS
//		• Fairness criteria: 1-of-best-c, maximin-share, EFc, PROPc targets
//		• RWAV: round-robin allocation with weighted approval voting
//		• Line protocol: recursive sweep with 1/k-democratic guarantees
//		• Plurality protocol: voting over pre-computed candidate partitions
//		• Partition generators: all / at-most-c / exactly-c set partitions
//
// ✨ Why choose famdiv?
//
//   - Deterministic – every protocol documents its tie-break rule; identical
//     inputs always produce identical allocations
//   - Strict contracts – sentinel errors per package, exact-partition
//     invariants checked on every successful return
//   - Pure Go – no cgo, no I/O, no global mutable state
//   - Traceable – every protocol accepts an optional trace sink for
//     human-readable decision logs
//
// The library is organized by concern:
//
//	goods/      — Good, Bundle and Allocation set types
//	partition/  — lazy set-partition generators
//	agent/      — valuation models and fairness predicates
//	criteria/   — family-level fairness criteria
//	family/     — member aggregation and happiness counts
//	trace/      — optional trace-sink hook
//	rwav/       — RWAV, enhanced-RWAV and two-thirds protocols
//	line/       — the recursive line protocol
//	plurality/  — plurality voting over candidate partitions
//
// A word of caution: the maximin-share and monotone except-c valuation
// paths enumerate partitions and combinations; they are exponential in the
// number of desired goods and tractable only for small universes. The
// library does not bound their running time — restrict inputs accordingly.
//
//	go get github.com/famdiv/famdiv
package famdiv
