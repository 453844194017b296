// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/katalvlaran/modeblocks/matrix"
)

// PartitionVector splits v into kept and deleted entries.
//   - va: entries at AscendingComplement(idx, n), in ascending index order.
//   - vb: entries at idx, in idx order.
//
// The kept order is ascending even when idx is not; contrast with the C block
// of PartitionMatrix, which follows idx order.
//
// Errors: ErrShapeMismatch (k > n), ErrInvalidIndex, ErrDimensionMismatch.
// Complexity: O(n).
func PartitionVector[T matrix.Number](v []T, idx []int, opts ...Option) (va, vb []T, err error) {
	o := gatherOptions(opts...)
	s, err := splitForPartition(opPartitionVector, len(v), idx, o)
	if err != nil {
		return nil, nil, err
	}

	return gather(v, s.Kept), gather(v, s.Deleted), nil
}

// PartitionVectorBatch splits each row of an (nW, n) batched vector.
// Row w of va/vb equals PartitionVector(row w of v).
//
// Errors: ErrShapeMismatch (nil v, k > n), ErrInvalidIndex, ErrDimensionMismatch.
// Complexity: O(nW·n).
func PartitionVectorBatch[T matrix.Number](v *matrix.Dense[T], idx []int, opts ...Option) (va, vb *matrix.Dense[T], err error) {
	o := gatherOptions(opts...)
	if err = requireRows(opPartitionVectorBatch, v); err != nil {
		return nil, nil, err
	}
	s, err := splitForPartition(opPartitionVectorBatch, v.Cols(), idx, o)
	if err != nil {
		return nil, nil, err
	}

	rows := rowRange(v.Rows())
	if va, err = v.Induced(rows, s.Kept); err != nil {
		return nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionVectorBatch, err)
	}
	if vb, err = v.Induced(rows, s.Deleted); err != nil {
		return nil, nil, fmt.Errorf("blocks.%s: %w", opPartitionVectorBatch, err)
	}

	return va, vb, nil
}

// ReassembleVector places va into a zero vector of length n = len(va) + len(idx).
// Position kept[i] (ascending complement of idx) receives va[i]; positions in
// idx are 0.
//
// Errors: ErrInvalidIndex, ErrDimensionMismatch.
// Complexity: O(n).
func ReassembleVector[T matrix.Number](va []T, idx []int, opts ...Option) ([]T, error) {
	o := gatherOptions(opts...)
	s, err := splitForReassemble(opReassembleVector, len(va), idx, o)
	if err != nil {
		return nil, err
	}

	out := make([]T, s.N)
	for i, pos := range s.Kept {
		out[pos] = va[i]
	}

	return out, nil
}

// ReassembleVectorBatch is ReassembleVector applied row-wise to an (nW, n-k)
// batched vector; the result is (nW, n) with zero columns at idx.
//
// Errors: ErrShapeMismatch (nil va), ErrInvalidIndex, ErrDimensionMismatch.
// Complexity: O(nW·n).
func ReassembleVectorBatch[T matrix.Number](va *matrix.Dense[T], idx []int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	if err := requireRows(opReassembleVectorBatch, va); err != nil {
		return nil, err
	}
	s, err := splitForReassemble(opReassembleVectorBatch, va.Cols(), idx, o)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense[T](va.Rows(), s.N)
	if err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassembleVectorBatch, err)
	}
	if err = out.Scatter(va, rowRange(va.Rows()), s.Kept); err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassembleVectorBatch, err)
	}

	return out, nil
}

// gather copies v[pos] for each pos, in order. The result is never nil.
func gather[T matrix.Number](v []T, positions []int) []T {
	out := make([]T, len(positions))
	for i, pos := range positions {
		out[i] = v[pos]
	}

	return out
}
