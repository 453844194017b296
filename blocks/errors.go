// SPDX-License-Identifier: MIT
// Package blocks: sentinel error set.
// Every operation validates its inputs completely before allocating any
// output, so an error never comes with a partial result. Sentinels are
// wrapped with the operation name ("blocks.PartitionMatrix: ...") and, where
// a lower layer detected the fault, with that layer's sentinel too; match
// with errors.Is.

package blocks

import (
	"errors"

	"github.com/katalvlaran/modeblocks/indexset"
)

var (
	// ErrInvalidIndex reports a delete-set entry outside [0, n) or a repeated entry.
	ErrInvalidIndex = indexset.ErrInvalidIndex

	// ErrShapeMismatch reports inputs whose shape cannot carry the delete set:
	// more indices than the dimension, nil inputs, non-square matrices or
	// batch slices, and batches assembled from slices of different sizes.
	ErrShapeMismatch = errors.New("blocks: shape mismatch")

	// ErrDimensionMismatch reports a full size, declared with WithTotalSize,
	// that disagrees with the input (partition) or with rows(A)+len(idx)
	// (reassemble).
	ErrDimensionMismatch = errors.New("blocks: dimension mismatch")
)
