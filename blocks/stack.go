// SPDX-License-Identifier: MIT

package blocks

import (
	"errors"

	"github.com/katalvlaran/modeblocks/matrix"
)

// StackMatrices assembles per-weight matrices into a batch for the *Batch
// operations. Slices whose sizes disagree, or nil slices, are rejected.
//
// Errors: ErrShapeMismatch (wrapping matrix.ErrDimensionMismatch or matrix.ErrNilMatrix).
// Complexity: O(nW·r·c).
func StackMatrices[T matrix.Number](ms ...*matrix.Dense[T]) (*matrix.Batch[T], error) {
	b, err := matrix.Stack(ms...)
	if err != nil {
		return nil, shapeErrorf(opStackMatrices, err, "%d slices", len(ms))
	}

	return b, nil
}

// StackVectors assembles per-weight vectors into an (nW, n) batched vector.
//
// Errors: ErrShapeMismatch when the vectors differ in length.
// Complexity: O(nW·n).
func StackVectors[T matrix.Number](vs ...[]T) (*matrix.Dense[T], error) {
	d, err := matrix.FromRows(vs)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, shapeErrorf(opStackVectors, err, "%d vectors", len(vs))
		}

		return nil, err
	}

	return d, nil
}
