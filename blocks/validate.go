// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/katalvlaran/modeblocks/indexset"
	"github.com/katalvlaran/modeblocks/matrix"
)

// operation tags used in error wrappers
const (
	opPartitionMatrix       = "PartitionMatrix"
	opPartitionMatrixBatch  = "PartitionMatrixBatch"
	opPartitionVector       = "PartitionVector"
	opPartitionVectorBatch  = "PartitionVectorBatch"
	opReassemble            = "Reassemble"
	opReassembleBatch       = "ReassembleBatch"
	opReassembleVector      = "ReassembleVector"
	opReassembleVectorBatch = "ReassembleVectorBatch"
	opStackMatrices         = "StackMatrices"
	opStackVectors          = "StackVectors"
)

// shapeErrorf tags a shape fault with ErrShapeMismatch and, when present, the
// lower-layer cause.
func shapeErrorf(op string, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("blocks.%s: %s: %w: %w", op, msg, ErrShapeMismatch, cause)
	}

	return fmt.Errorf("blocks.%s: %s: %w", op, msg, ErrShapeMismatch)
}

// splitForPartition validates idx against the dimension n of a partition input.
// Order: declared total size → k ≤ n → range/duplicates.
func splitForPartition(op string, n int, idx []int, o Options) (indexset.Split, error) {
	if o.totalSize != unsetTotalSize && o.totalSize != n {
		return indexset.Split{}, fmt.Errorf("blocks.%s: input dimension %d, declared %d: %w",
			op, n, o.totalSize, ErrDimensionMismatch)
	}
	if len(idx) > n {
		return indexset.Split{}, shapeErrorf(op, nil, "%d indices to delete from dimension %d", len(idx), n)
	}
	s, err := indexset.NewSplit(idx, n)
	if err != nil {
		return indexset.Split{}, fmt.Errorf("blocks.%s: %w", op, err)
	}

	return s, nil
}

// splitForReassemble infers n = reduced + len(idx), checks it against a
// declared total size, then validates idx against n.
func splitForReassemble(op string, reduced int, idx []int, o Options) (indexset.Split, error) {
	n := reduced + len(idx)
	if o.totalSize != unsetTotalSize && o.totalSize != n {
		return indexset.Split{}, fmt.Errorf("blocks.%s: reduced size %d + %d deleted != declared %d: %w",
			op, reduced, len(idx), o.totalSize, ErrDimensionMismatch)
	}
	s, err := indexset.NewSplit(idx, n)
	if err != nil {
		return indexset.Split{}, fmt.Errorf("blocks.%s: %w", op, err)
	}

	return s, nil
}

// requireSquare rejects nil and non-square single matrices.
func requireSquare[T matrix.Number](op string, m *matrix.Dense[T]) error {
	if m == nil {
		return shapeErrorf(op, matrix.ErrNilMatrix, "matrix")
	}
	if err := matrix.ValidateSquare[T](m); err != nil {
		return shapeErrorf(op, err, "matrix is %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// requireBatchSquare rejects nil batches and batches of non-square slices.
func requireBatchSquare[T matrix.Number](op string, b *matrix.Batch[T]) error {
	if err := matrix.ValidateBatchSquare(b); err != nil {
		return shapeErrorf(op, err, "batch")
	}

	return nil
}

// requireRows rejects a nil batched vector.
func requireRows[T matrix.Number](op string, v *matrix.Dense[T]) error {
	if v == nil {
		return shapeErrorf(op, matrix.ErrNilMatrix, "batched vector")
	}

	return nil
}

// rowRange returns [0, 1, ..., n-1].
func rowRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
