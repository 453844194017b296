// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors return these sentinels and tests
// check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for nonsensical option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Return sentinels directly from validators; wrap with method context
// (fmt.Errorf("Dense.At(%d,%d): %w", ...)) at the detection site.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero-sized shapes are legal: empty partition blocks are 0×k or k×0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (batch, row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. stacking slices of different shapes or a ragged row set.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix, Batch or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
