// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the read/write surface shared by
// Dense and any caller-provided storage. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Number is the set of element types a Dense or Batch may hold.
// Real covariance blocks use float64; weighted (batched) data is usually
// complex128. Both flow through the same generic kernels.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Matrix is a two-dimensional array of T with safe, bounds-checked access.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

// one returns the multiplicative identity of T.
func one[T Number]() T { return T(1) }
