// Package plurality implements the plurality-vote protocol over
// pre-computed candidate partitions.
//
// Each family casts one vote: every member names the candidate bundle it
// values most (ties to the lowest index) and the family's vote is the
// cardinality-weighted plurality winner. When every family votes for a
// distinct index the votes induce an allocation; when two families
// collide, no envy-free permutation exists and the protocol reports "no
// result" — an expected outcome, not an error.
//
// Two entry points:
//
//   - FindEnvyFreeAllocation — k families vote over one shared k-partition;
//     family i receives the bundle it voted for.
//   - FindEF2Allocation — each family votes within its own designated
//     "subsimplex vertex" (a partial k-partition); family i receives the
//     union, across all vertices, of the sub-bundle at its winning index,
//     yielding an allocation envy-free up to the partition granularity.
//
// Errors:
//
//	ErrVertexShape - the partition/vertex arity does not match the family count.
package plurality
