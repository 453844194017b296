// SPDX-License-Identifier: MIT

package gonumblocks

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/modeblocks/matrix"
)

// FromMatrix copies any gonum matrix into a Dense.
// Values are copied verbatim; NaN/Inf are not rejected here.
func FromMatrix(m mat.Matrix) *matrix.Dense[float64] {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	d, _ := matrix.FromRows(rows, matrix.WithNoValidateNaNInf()) // rectangular by construction

	return d
}

// FromCMatrix copies a complex gonum matrix into a Dense.
func FromCMatrix(m mat.CMatrix) *matrix.Dense[complex128] {
	r, c := m.Dims()
	rows := make([][]complex128, r)
	for i := range rows {
		rows[i] = make([]complex128, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	d, _ := matrix.FromRows(rows, matrix.WithNoValidateNaNInf())

	return d
}

// FromVector copies a gonum vector into a slice.
func FromVector(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// flatten returns d's contents in row-major order.
func flatten[T matrix.Number](d *matrix.Dense[T]) []T {
	r, c := d.Shape()
	out := make([]T, r*c)
	d.Do(func(i, j int, v T) bool {
		out[i*c+j] = v
		return true
	})

	return out
}

// toSymDense converts a square Dense; only the upper triangle is read.
func toSymDense(d *matrix.Dense[float64]) *mat.SymDense {
	if d.Rows() == 0 {
		return &mat.SymDense{}
	}

	return mat.NewSymDense(d.Rows(), flatten(d))
}

func toDense(d *matrix.Dense[float64]) *mat.Dense {
	if d.Rows() == 0 || d.Cols() == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(d.Rows(), d.Cols(), flatten(d))
}

func toCDense(d *matrix.Dense[complex128]) *mat.CDense {
	if d.Rows() == 0 || d.Cols() == 0 {
		return &mat.CDense{}
	}

	return mat.NewCDense(d.Rows(), d.Cols(), flatten(d))
}

func toVecDense(v []float64) *mat.VecDense {
	if len(v) == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(len(v), v)
}
