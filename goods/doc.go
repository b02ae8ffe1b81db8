// Package goods defines the central Good, Bundle and Allocation types used
// by every allocation protocol in famdiv.
//
// A Good is an opaque, totally-ordered identifier. A Bundle is a set of
// goods with deterministic (sorted) iteration helpers. An Allocation is a
// list of bundles, one per family, whose validity condition — pairwise
// disjoint bundles whose union is the full good universe — every protocol
// must guarantee on success.
//
// Errors:
//
//	ErrNotAPartition - an allocation loses, duplicates, or invents a good.
package goods
