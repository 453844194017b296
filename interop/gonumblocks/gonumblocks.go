// SPDX-License-Identifier: MIT

package gonumblocks

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/modeblocks/blocks"
	"github.com/katalvlaran/modeblocks/matrix"
)

// PartitionSym is blocks.PartitionMatrix for a gonum symmetric matrix.
// a and c are symmetric by construction; b is the kept×deleted cross block.
func PartitionSym(s mat.Symmetric, idx []int, opts ...blocks.Option) (a *mat.SymDense, b *mat.Dense, c *mat.SymDense, err error) {
	if s == nil {
		return nil, nil, nil, fmt.Errorf("gonumblocks.PartitionSym: %w: %w", blocks.ErrShapeMismatch, matrix.ErrNilMatrix)
	}
	da, db, dc, err := blocks.PartitionMatrix(FromMatrix(s), idx, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return toSymDense(da), toDense(db), toSymDense(dc), nil
}

// ReassembleSym is blocks.Reassemble for a gonum symmetric matrix.
// A nil a is treated as the empty 0×0 matrix.
func ReassembleSym(a mat.Symmetric, idx []int, opts ...blocks.Option) (*mat.SymDense, error) {
	da := emptyFloat()
	if a != nil {
		da = FromMatrix(a)
	}
	full, err := blocks.Reassemble(da, idx, opts...)
	if err != nil {
		return nil, err
	}

	return toSymDense(full), nil
}

// PartitionVec is blocks.PartitionVector for a gonum vector.
func PartitionVec(v mat.Vector, idx []int, opts ...blocks.Option) (va, vb *mat.VecDense, err error) {
	var raw []float64
	if v != nil {
		raw = FromVector(v)
	}
	ka, kb, err := blocks.PartitionVector(raw, idx, opts...)
	if err != nil {
		return nil, nil, err
	}

	return toVecDense(ka), toVecDense(kb), nil
}

// ReassembleVec is blocks.ReassembleVector for a gonum vector.
// A nil va is treated as the empty vector.
func ReassembleVec(va mat.Vector, idx []int, opts ...blocks.Option) (*mat.VecDense, error) {
	var raw []float64
	if va != nil {
		raw = FromVector(va)
	}
	full, err := blocks.ReassembleVector(raw, idx, opts...)
	if err != nil {
		return nil, err
	}

	return toVecDense(full), nil
}

// PartitionCBatch is blocks.PartitionMatrixBatch for per-weight complex matrices.
// Output slice w comes from ms[w].
func PartitionCBatch(ms []mat.CMatrix, idx []int, opts ...blocks.Option) (a, b, c []*mat.CDense, err error) {
	batch, err := stackComplex("PartitionCBatch", ms)
	if err != nil {
		return nil, nil, nil, err
	}
	ba, bb, bc, err := blocks.PartitionMatrixBatch(batch, idx, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return unstackComplex(ba), unstackComplex(bb), unstackComplex(bc), nil
}

// ReassembleCBatch is blocks.ReassembleBatch for per-weight complex matrices.
func ReassembleCBatch(as []mat.CMatrix, idx []int, opts ...blocks.Option) ([]*mat.CDense, error) {
	batch, err := stackComplex("ReassembleCBatch", as)
	if err != nil {
		return nil, err
	}
	full, err := blocks.ReassembleBatch(batch, idx, opts...)
	if err != nil {
		return nil, err
	}

	return unstackComplex(full), nil
}

func stackComplex(op string, ms []mat.CMatrix) (*matrix.Batch[complex128], error) {
	slices := make([]*matrix.Dense[complex128], len(ms))
	for w, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("gonumblocks.%s: slice %d: %w: %w", op, w, blocks.ErrShapeMismatch, matrix.ErrNilMatrix)
		}
		slices[w] = FromCMatrix(m)
	}
	b, err := blocks.StackMatrices(slices...)
	if err != nil {
		return nil, fmt.Errorf("gonumblocks.%s: %w", op, err)
	}

	return b, nil
}

func unstackComplex(b *matrix.Batch[complex128]) []*mat.CDense {
	slices := b.Unstack()
	out := make([]*mat.CDense, len(slices))
	for w, d := range slices {
		out[w] = toCDense(d)
	}

	return out
}

func emptyFloat() *matrix.Dense[float64] {
	d, _ := matrix.NewDense[float64](0, 0) // zero dimensions are valid

	return d
}
