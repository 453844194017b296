// Package matrix provides the dense storage used by the block partition and
// reassembly routines.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major r×c matrix over any Number (float32, float64,
//     complex64, complex128 and named types built on them), with bounds-checked
//     At/Set, copy extraction by index lists (Induced) and its inverse (Scatter).
//   - Batch[T]: an ordered stack of equally shaped matrices with the batch as
//     the leading axis, plus no-copy per-slice views for batched kernels.
//   - Validators (nil, square, symmetric, vector length) and a numeric policy
//     that rejects NaN/Inf on Set unless disabled with WithNoValidateNaNInf.
//
// Zero-sized shapes are legal everywhere: removing every index of a
// partition yields 0×0 and 0×k blocks.
//
// See example_test.go for usage patterns.
package matrix
