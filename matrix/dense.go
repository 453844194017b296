// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) and its inverse (Scatter).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced/Scatter: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxInduce  = "Induced" // copy extraction by index lists
	ctxScatter = "Scatter" // inverse of Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtValue    = "%v"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense[T Number] struct {
	r, c           int  // row and column counts (>=0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]    = (*Dense[float64])(nil)
	_ Matrix[complex128] = (*Dense[complex128])(nil)
	_ fmt.Stringer       = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: stamp numeric policy resolved from opts.
//
// Behavior highlights:
//   - Zero-area shapes (0×k, k×0, 0×0) are legal; partition blocks use them.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewIdentity returns the n×n identity matrix (main diagonal = 1, else 0).
// Complexity: O(n²) time and memory.
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = one[T]()
	}

	return m, nil
}

// FromRows builds a Dense by copying a row slice.
// MAIN DESCRIPTION:
//   - Convenience constructor for literals and test fixtures.
//
// Implementation:
//   - Stage 1: verify every row has len(rows[0]) entries.
//   - Stage 2: copy rows into a fresh flat buffer.
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 matrix.
//   - Values are copied verbatim; the numeric policy applies to later Set calls only.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}
	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf in any component when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && nonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the contents as freshly allocated rows.
// Useful for comparisons in tests and for handing data to row-oriented callers.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf(_fmtValue, m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy m[rowsIdx[i], colsIdx[j]] into result[i, j].
//
// Implementation:
//   - Stage 1: bounds-check every index before allocating.
//   - Stage 2: allocate len(rowsIdx)×len(colsIdx).
//   - Stage 3: nested loops with direct offset math.
//
// Behavior highlights:
//   - Index order is honored as given; no sorting.
//   - Duplicates are allowed (repeated rows/cols in the result).
//   - Zero-area results are legal Dense values with an empty buffer.
//   - Policy is preserved from the base (validateNaNInf).
//
// Errors:
//   - ErrOutOfRange (index outside bounds); no allocation happens on error.
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	if err := checkIndexList(ctxInduce, "row", rowsIdx, m.r); err != nil {
		return nil, err
	}
	if err := checkIndexList(ctxInduce, "col", colsIdx, m.c); err != nil {
		return nil, err
	}

	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense[T]{
		r:              rp,
		c:              cp,
		data:           make([]T, rp*cp),
		validateNaNInf: m.validateNaNInf,
	}
	m.induce(res, rowsIdx, colsIdx)

	return res, nil
}

// InducedInto is Induced writing into a caller-owned dst instead of allocating.
// dst must be exactly len(rowsIdx)×len(colsIdx); it is typically a Batch view.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange. dst is untouched on error.
// Complexity: O(rp*cp), no allocations.
func (m *Dense[T]) InducedInto(dst *Dense[T], rowsIdx, colsIdx []int) error {
	if dst == nil {
		return fmt.Errorf("Dense.%s: %w", ctxInduce, ErrNilMatrix)
	}
	if dst.r != len(rowsIdx) || dst.c != len(colsIdx) {
		return fmt.Errorf("Dense.%s: dst %dx%d vs index lists %dx%d: %w",
			ctxInduce, dst.r, dst.c, len(rowsIdx), len(colsIdx), ErrDimensionMismatch)
	}
	if err := checkIndexList(ctxInduce, "row", rowsIdx, m.r); err != nil {
		return err
	}
	if err := checkIndexList(ctxInduce, "col", colsIdx, m.c); err != nil {
		return err
	}
	m.induce(dst, rowsIdx, colsIdx)

	return nil
}

// induce is the unchecked copy kernel behind Induced and InducedInto.
func (m *Dense[T]) induce(dst *Dense[T], rowsIdx, colsIdx []int) {
	var i, j, srcBase, dstBase int
	cp := len(colsIdx)
	for i = 0; i < len(rowsIdx); i++ {
		srcBase = rowsIdx[i] * m.c
		dstBase = i * cp
		for j = 0; j < cp; j++ {
			dst.data[dstBase+j] = m.data[srcBase+colsIdx[j]]
		}
	}
}

// Scatter writes src into m at the given index sets: m[rowsIdx[i], colsIdx[j]] = src[i, j].
// MAIN DESCRIPTION:
//   - In-place inverse of Induced; untouched cells keep their value.
//
// Implementation:
//   - Stage 1: check len(rowsIdx)==src.Rows(), len(colsIdx)==src.Cols().
//   - Stage 2: bounds-check every index.
//   - Stage 3: nested loops with direct offset math.
//
// Behavior highlights:
//   - All-or-nothing: validation completes before the first write.
//   - Values are moved verbatim; the numeric policy is not re-applied.
//
// Errors:
//   - ErrNilMatrix (src nil), ErrDimensionMismatch (list/shape disagreement),
//     ErrOutOfRange (index outside m).
//
// Complexity:
//   - Time O(rp*cp), Space O(1).
func (m *Dense[T]) Scatter(src *Dense[T], rowsIdx, colsIdx []int) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxScatter, ErrNilMatrix)
	}
	if len(rowsIdx) != src.r || len(colsIdx) != src.c {
		return fmt.Errorf("Dense.%s: src %dx%d vs index lists %dx%d: %w",
			ctxScatter, src.r, src.c, len(rowsIdx), len(colsIdx), ErrDimensionMismatch)
	}
	if err := checkIndexList(ctxScatter, "row", rowsIdx, m.r); err != nil {
		return err
	}
	if err := checkIndexList(ctxScatter, "col", colsIdx, m.c); err != nil {
		return err
	}

	var i, j, srcBase, dstBase int
	for i = 0; i < src.r; i++ {
		srcBase = i * src.c
		dstBase = rowsIdx[i] * m.c
		for j = 0; j < src.c; j++ {
			m.data[dstBase+colsIdx[j]] = src.data[srcBase+j]
		}
	}

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// checkIndexList verifies 0 <= idx[k] < bound for every k.
func checkIndexList(method, axis string, idx []int, bound int) error {
	var k int
	for k = 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= bound {
			return fmt.Errorf("Dense.%s: %s index %d (bound %d): %w", method, axis, idx[k], bound, ErrOutOfRange)
		}
	}

	return nil
}
