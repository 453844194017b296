// SPDX-License-Identifier: MIT

// Package matrix - Batch: an ordered stack of equally shaped Dense slices.
//
// Purpose:
//   - Store nWeights matrices of shape rows×cols in one flat buffer with the
//     batch as the leading axis (offset = w*rows*cols + i*cols + j).
//   - Hand out no-copy per-slice views (View) so batched kernels can run the
//     single-matrix code path on each slice, optionally in parallel.
//
// Complexity quicksheet:
//   - NewBatch: O(n*r*c); At/Set/View: O(1); Slice/Clone: O(r*c) / O(n*r*c).

package matrix

import "fmt"

const (
	ctxBatchAt    = "At"
	ctxBatchSet   = "Set"
	ctxBatchView  = "View"
	ctxBatchSlice = "Slice"
	ctxBatchPut   = "SetSlice"
	ctxStack      = "Stack"
)

// batchErrorf wraps an error with Batch method context and coordinates.
func batchErrorf(method string, w, row, col int, err error) error {
	return fmt.Errorf("Batch.%s(%d,%d,%d): %w", method, w, row, col, err)
}

// Batch is a row-major stack of n matrices, each r×c.
// Slices are independent values; writing one never affects another.
type Batch[T Number] struct {
	n, r, c        int
	data           []T // len == n*r*c
	validateNaNInf bool
}

// NewBatch allocates n zero slices of shape rows×cols.
//
// Errors: ErrInvalidDimensions when any dimension is negative.
// Complexity: O(n*rows*cols).
func NewBatch[T Number](n, rows, cols int, opts ...Option) (*Batch[T], error) {
	if n < 0 || rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewBatch(%d,%d,%d): %w", n, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Batch[T]{
		n:              n,
		r:              rows,
		c:              cols,
		data:           make([]T, n*rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewIdentityBatch tiles the size×size identity n times.
// MAIN DESCRIPTION:
//   - Template for reassembling batched matrices: every slice starts as I.
//
// Complexity:
//   - Time O(n*size²), Space O(n*size²).
func NewIdentityBatch[T Number](n, size int, opts ...Option) (*Batch[T], error) {
	b, err := NewBatch[T](n, size, size, opts...)
	if err != nil {
		return nil, err
	}
	var w, i, base int
	stride := size * size
	for w = 0; w < n; w++ {
		base = w * stride
		for i = 0; i < size; i++ {
			b.data[base+i*size+i] = one[T]()
		}
	}

	return b, nil
}

// Stack copies slices into a new Batch, preserving order.
// MAIN DESCRIPTION:
//   - Assemble a batch from independently built matrices.
//
// Implementation:
//   - Stage 1: reject nil slices; require every slice to match slices[0]'s shape.
//   - Stage 2: allocate and copy each slice's buffer at its batch offset.
//
// Behavior highlights:
//   - Zero slices yield an empty 0×0×0 batch.
//   - The numeric policy is taken from slices[0].
//
// Errors:
//   - ErrNilMatrix (nil slice), ErrDimensionMismatch (slices disagree in shape).
//
// Complexity:
//   - Time O(n*r*c), Space O(n*r*c).
func Stack[T Number](slices ...*Dense[T]) (*Batch[T], error) {
	if len(slices) == 0 {
		return &Batch[T]{validateNaNInf: DefaultValidateNaNInf}, nil
	}
	var w int
	for w = 0; w < len(slices); w++ {
		if slices[w] == nil {
			return nil, fmt.Errorf("%s: slice %d: %w", ctxStack, w, ErrNilMatrix)
		}
	}
	r, c := slices[0].Shape()
	for w = 1; w < len(slices); w++ {
		if slices[w].r != r || slices[w].c != c {
			return nil, fmt.Errorf("%s: slice %d is %dx%d, want %dx%d: %w",
				ctxStack, w, slices[w].r, slices[w].c, r, c, ErrDimensionMismatch)
		}
	}

	b := &Batch[T]{
		n:              len(slices),
		r:              r,
		c:              c,
		data:           make([]T, len(slices)*r*c),
		validateNaNInf: slices[0].validateNaNInf,
	}
	stride := r * c
	for w = 0; w < b.n; w++ {
		copy(b.data[w*stride:(w+1)*stride], slices[w].data)
	}

	return b, nil
}

// Len returns the number of slices (the batch size).
func (b *Batch[T]) Len() int { return b.n }

// Rows returns the per-slice row count.
func (b *Batch[T]) Rows() int { return b.r }

// Cols returns the per-slice column count.
func (b *Batch[T]) Cols() int { return b.c }

// Shape returns (batch size, rows, cols).
func (b *Batch[T]) Shape() (n, rows, cols int) { return b.n, b.r, b.c }

func (b *Batch[T]) offset(w, row, col int) (int, error) {
	if w < 0 || w >= b.n || row < 0 || row >= b.r || col < 0 || col >= b.c {
		return 0, ErrOutOfRange
	}

	return (w*b.r+row)*b.c + col, nil
}

// At returns slice w's element at (row, col).
// Errors: ErrOutOfRange.
func (b *Batch[T]) At(w, row, col int) (T, error) {
	off, err := b.offset(w, row, col)
	if err != nil {
		var zero T
		return zero, batchErrorf(ctxBatchAt, w, row, col, err)
	}

	return b.data[off], nil
}

// Set stores v in slice w at (row, col), honoring the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf.
func (b *Batch[T]) Set(w, row, col int, v T) error {
	off, err := b.offset(w, row, col)
	if err != nil {
		return batchErrorf(ctxBatchSet, w, row, col, err)
	}
	if b.validateNaNInf && nonFinite(v) {
		return batchErrorf(ctxBatchSet, w, row, col, ErrNaNInf)
	}
	b.data[off] = v

	return nil
}

// View returns slice w as a Dense sharing the batch storage.
// MAIN DESCRIPTION:
//   - No-copy window onto one slice; writes through the view land in the batch.
//
// Behavior highlights:
//   - Views of distinct slices never overlap, so they may be written concurrently.
//   - The view carries the batch numeric policy.
//
// Errors:
//   - ErrOutOfRange when w is outside [0, Len()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Batch[T]) View(w int) (*Dense[T], error) {
	if w < 0 || w >= b.n {
		return nil, fmt.Errorf("Batch.%s(%d): %w", ctxBatchView, w, ErrOutOfRange)
	}
	stride := b.r * b.c

	return &Dense[T]{
		r:              b.r,
		c:              b.c,
		data:           b.data[w*stride : (w+1)*stride : (w+1)*stride],
		validateNaNInf: b.validateNaNInf,
	}, nil
}

// Slice returns an independent copy of slice w.
// Errors: ErrOutOfRange.
// Complexity: O(r*c).
func (b *Batch[T]) Slice(w int) (*Dense[T], error) {
	v, err := b.View(w)
	if err != nil {
		return nil, fmt.Errorf("Batch.%s: %w", ctxBatchSlice, err)
	}

	return v.Clone(), nil
}

// SetSlice overwrites slice w with a copy of m.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (b *Batch[T]) SetSlice(w int, m *Dense[T]) error {
	if m == nil {
		return fmt.Errorf("Batch.%s(%d): %w", ctxBatchPut, w, ErrNilMatrix)
	}
	if m.r != b.r || m.c != b.c {
		return fmt.Errorf("Batch.%s(%d): got %dx%d, want %dx%d: %w",
			ctxBatchPut, w, m.r, m.c, b.r, b.c, ErrDimensionMismatch)
	}
	v, err := b.View(w)
	if err != nil {
		return fmt.Errorf("Batch.%s: %w", ctxBatchPut, err)
	}
	copy(v.data, m.data)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (b *Batch[T]) Clone() *Batch[T] {
	cp := make([]T, len(b.data))
	copy(cp, b.data)

	return &Batch[T]{n: b.n, r: b.r, c: b.c, data: cp, validateNaNInf: b.validateNaNInf}
}

// Unstack returns every slice as an independent Dense, in batch order.
// Complexity: O(n*r*c).
func (b *Batch[T]) Unstack() []*Dense[T] {
	out := make([]*Dense[T], b.n)
	var w int
	for w = 0; w < b.n; w++ {
		v, _ := b.View(w) // w is in range by construction
		out[w] = v.Clone()
	}

	return out
}
