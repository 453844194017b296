// SPDX-License-Identifier: MIT

package blocks

import (
	"fmt"

	"github.com/katalvlaran/modeblocks/matrix"
)

// Reassemble embeds a reduced (n-k)×(n-k) matrix a into an n×n matrix, n = rows(a) + len(idx).
// MAIN DESCRIPTION:
//   - Kept×kept positions (ascending complement of idx) hold a: a[i,j] goes to
//     (kept[i], kept[j]).
//   - Every diagonal position in idx holds 1; every other position holds 0.
//
// Implementation:
//   - Stage 1: reject nil/non-square a; infer n; check WithTotalSize; validate idx against n.
//   - Stage 2: allocate a zero n×n matrix and scatter a onto kept×kept.
//   - Stage 3: write 1 on each deleted diagonal entry.
//
// Behavior highlights:
//   - The fill is fixed regardless of a's contents: this reinserts an
//     untouched subsystem, it does not undo PartitionMatrix unless the removed
//     block was already identity with zero cross terms.
//   - len(idx) == 0 returns a copy of a; an empty a returns the identity.
//
// Errors:
//   - ErrShapeMismatch, ErrInvalidIndex, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Reassemble[T matrix.Number](a *matrix.Dense[T], idx []int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	if err := requireSquare(opReassemble, a); err != nil {
		return nil, err
	}
	s, err := splitForReassemble(opReassemble, a.Rows(), idx, o)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense[T](s.N, s.N)
	if err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassemble, err)
	}
	if err = out.Scatter(a, s.Kept, s.Kept); err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassemble, err)
	}
	for _, d := range s.Deleted {
		if err = out.Set(d, d, T(1)); err != nil {
			return nil, fmt.Errorf("blocks.%s: %w", opReassemble, err)
		}
	}

	return out, nil
}

// ReassembleBatch embeds every slice of an (nW, n-k, n-k) batch into (nW, n, n).
// MAIN DESCRIPTION:
//   - Starts from nW identity matrices and overwrites kept×kept with a's slices,
//     so deleted diagonals are 1 and cross entries are 0.
//
// Implementation:
//   - Stage 1: validation as in Reassemble.
//   - Stage 2: allocate the identity template (matrix.NewIdentityBatch).
//   - Stage 3: per slice, scatter a[w] onto kept×kept through views.
//
// Errors:
//   - ErrShapeMismatch, ErrInvalidIndex, ErrDimensionMismatch.
//
// Determinism:
//   - Output slice w always comes from input slice w.
//
// Complexity:
//   - Time O(nW·n²), Space O(nW·n²).
func ReassembleBatch[T matrix.Number](a *matrix.Batch[T], idx []int, opts ...Option) (*matrix.Batch[T], error) {
	o := gatherOptions(opts...)
	if err := requireBatchSquare(opReassembleBatch, a); err != nil {
		return nil, err
	}
	s, err := splitForReassemble(opReassembleBatch, a.Rows(), idx, o)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewIdentityBatch[T](a.Len(), s.N)
	if err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassembleBatch, err)
	}
	err = forEachSlice(a.Len(), o, func(w int) error {
		src, err := a.View(w)
		if err != nil {
			return err
		}
		dst, err := out.View(w)
		if err != nil {
			return err
		}

		return dst.Scatter(src, s.Kept, s.Kept)
	})
	if err != nil {
		return nil, fmt.Errorf("blocks.%s: %w", opReassembleBatch, err)
	}

	return out, nil
}
