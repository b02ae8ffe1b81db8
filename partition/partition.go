package partition

import "iter"

// All yields every set-partition of seq as a list of blocks. Blocks list
// their elements in an order derived from seq, and partitions appear in
// the canonical recursion order: for seq = [1,2,3] the sequence is
// [[1 2 3]], [[1] [2 3]], [[1 2] [3]], [[2] [1 3]], [[1] [2] [3]].
//
// The empty sequence has exactly one partition: the empty one.
//
// Complexity: the number of partitions is the Bell number B(len(seq)).
func All[T any](seq []T) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		// A partition of n elements never has more than n blocks, so n is
		// an always-permissive bound.
		emit(seq, len(seq), yield)
	}
}

// AtMost yields every set-partition of seq with at most c blocks, in the
// same order as All with the over-c partitions skipped. c < 1 yields
// nothing for non-empty seq.
func AtMost[T any](seq []T, c int) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		emit(seq, c, yield)
	}
}

// Exactly yields every set-partition of seq with exactly c blocks —
// AtMost filtered down to the exact block count. The number of results is
// the Stirling number of the second kind S(len(seq), c).
func Exactly[T any](seq []T, c int) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		emit(seq, c, func(p [][]T) bool {
			if len(p) != c {
				return true
			}
			return yield(p)
		})
	}
}

// emit runs the insert-into-block-or-new-block recursion, never producing
// more than maxBlocks blocks. Returns false once yield has requested
// termination.
func emit[T any](seq []T, maxBlocks int, yield func([][]T) bool) bool {
	if len(seq) == 0 {
		return yield(nil)
	}
	if len(seq) == 1 {
		if maxBlocks < 1 {
			return true
		}
		return yield([][]T{{seq[0]}})
	}
	head := seq[0]
	return emit(seq[1:], maxBlocks, func(smaller [][]T) bool {
		// One variant per existing block, with head prepended to it.
		for n := range smaller {
			variant := make([][]T, len(smaller))
			copy(variant, smaller)
			block := make([]T, 0, len(smaller[n])+1)
			block = append(block, head)
			block = append(block, smaller[n]...)
			variant[n] = block
			if !yield(variant) {
				return false
			}
		}
		// One variant with head in its own new block, if the bound allows.
		if len(smaller) < maxBlocks {
			variant := make([][]T, 0, len(smaller)+1)
			variant = append(variant, []T{head})
			variant = append(variant, smaller...)
			if !yield(variant) {
				return false
			}
		}
		return true
	})
}
