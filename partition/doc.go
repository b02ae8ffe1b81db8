// Package partition generates set-partitions of a finite sequence.
//
// All generators are lazy iter.Seq sequences: they are pure, deterministic,
// and re-enterable — ranging over the same sequence twice yields the same
// partitions in the same order, and an early break costs nothing beyond
// the partitions already produced.
//
// The recursion is the classic one: a partition of seq is obtained from a
// partition of its tail by inserting the head into each existing block in
// turn, or by opening a new singleton block. The number of partitions of
// an n-element sequence is the n-th Bell number — no pruning is applied
// beyond the optional block-count bound, so callers must keep n small.
package partition
