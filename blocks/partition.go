// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/katalvlaran/modeblocks/matrix"
)

// PartitionMatrix splits a symmetric n×n matrix m into three blocks.
// MAIN DESCRIPTION:
//   - a: kept×kept, (n-k)×(n-k), rows and columns in ascending kept order.
//   - b: kept rows × deleted columns, (n-k)×k, columns in idx order.
//   - c: deleted×deleted, k×k, c[i,j] = m[idx[i], idx[j]] (idx order, not sorted).
//
// Implementation:
//   - Stage 1: reject nil/non-square m; validate idx (k ≤ n, range, duplicates).
//   - Stage 2: derive kept = AscendingComplement(idx, n) and deleted = AsGiven(idx).
//   - Stage 3: copy the three blocks out with Induced.
//
// Behavior highlights:
//   - k == 0: a is a copy of m, b is n×0, c is 0×0.
//   - k == n: a is 0×0, b is 0×n, c is m reordered by idx.
//   - m is never mutated; every block owns its storage.
//
// Errors:
//   - ErrShapeMismatch (nil/non-square m, k > n), ErrInvalidIndex,
//     ErrDimensionMismatch (WithTotalSize disagrees with n).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func PartitionMatrix[T matrix.Number](m *matrix.Dense[T], idx []int, opts ...Option) (a, b, c *matrix.Dense[T], err error) {
	o := gatherOptions(opts...)
	if err = requireSquare(opPartitionMatrix, m); err != nil {
		return nil, nil, nil, err
	}
	s, err := splitForPartition(opPartitionMatrix, m.Rows(), idx, o)
	if err != nil {
		return nil, nil, nil, err
	}

	if a, err = m.Induced(s.Kept, s.Kept); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: A: %w", opPartitionMatrix, err)
	}
	if b, err = m.Induced(s.Kept, s.Deleted); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: B: %w", opPartitionMatrix, err)
	}
	if c, err = m.Induced(s.Deleted, s.Deleted); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: C: %w", opPartitionMatrix, err)
	}

	return a, b, c, nil
}

// PartitionMatrixBatch splits every slice of an (nW, n, n) batch with the same idx.
// MAIN DESCRIPTION:
//   - a: (nW, n-k, n-k) kept×kept.
//   - b: (nW, n-k, k) kept rows × deleted columns, columns in idx order.
//   - c: (nW, k, k) deleted×deleted in idx order.
//
// Each slice of the result equals PartitionMatrix applied to the matching
// input slice; the two functions are kept apart so callers never depend on an
// overloaded signature.
//
// Implementation:
//   - Stage 1: reject nil batches and non-square slices; validate idx once.
//   - Stage 2: allocate the three output batches.
//   - Stage 3: per slice, copy blocks through no-copy views (parallel when
//     the batch is large enough, see WithWorkers / WithMinParallelBatch).
//
// Errors:
//   - ErrShapeMismatch, ErrInvalidIndex, ErrDimensionMismatch.
//
// Determinism:
//   - Output slice w always comes from input slice w.
//
// Complexity:
//   - Time O(nW·n²), Space O(nW·n²).
func PartitionMatrixBatch[T matrix.Number](m *matrix.Batch[T], idx []int, opts ...Option) (a, b, c *matrix.Batch[T], err error) {
	o := gatherOptions(opts...)
	if err = requireBatchSquare(opPartitionMatrixBatch, m); err != nil {
		return nil, nil, nil, err
	}
	s, err := splitForPartition(opPartitionMatrixBatch, m.Rows(), idx, o)
	if err != nil {
		return nil, nil, nil, err
	}

	nw, nk, k := m.Len(), len(s.Kept), s.K()
	if a, err = matrix.NewBatch[T](nw, nk, nk); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionMatrixBatch, err)
	}
	if b, err = matrix.NewBatch[T](nw, nk, k); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionMatrixBatch, err)
	}
	if c, err = matrix.NewBatch[T](nw, k, k); err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionMatrixBatch, err)
	}

	err = forEachSlice(nw, o, func(w int) error {
		src, err := m.View(w)
		if err != nil {
			return err
		}
		av, err := a.View(w)
		if err != nil {
			return err
		}
		bv, err := b.View(w)
		if err != nil {
			return err
		}
		cv, err := c.View(w)
		if err != nil {
			return err
		}
		if err = src.InducedInto(av, s.Kept, s.Kept); err != nil {
			return err
		}
		if err = src.InducedInto(bv, s.Kept, s.Deleted); err != nil {
			return err
		}

		return src.InducedInto(cv, s.Deleted, s.Deleted)
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionMatrixBatch, err)
	}

	return a, b, c, nil
}
