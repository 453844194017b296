// Package modeblocks splits symmetric matrices and vectors into blocks by a
// set of indices to delete, and embeds reduced blocks back into full size.
//
// 🚀 What is modeblocks?
//
//	A small, pure-Go toolkit for the bookkeeping around removing modes from
//	a system and reinserting them later:
//		• Partition: A (kept×kept), B (kept×deleted), C (deleted×deleted)
//		• Reassemble: reduced A back to n×n with 1 on deleted diagonals
//		• Vectors: va (kept) / vb (deleted) and the zero-filled inverse
//		• Batches: the same operations across a leading batch axis
//
// Index conventions (shared by every operation):
//
//   - Kept indices are the ascending complement of the delete set.
//   - Deleted indices keep the caller's order (C, the columns of B, vb).
//   - A delete set with duplicates or out-of-range entries is rejected.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/               — generic row-major Dense and Batch containers, validators
//	indexset/             — delete-set validation and complement (roaring bitmaps)
//	blocks/               — the partition / reassemble operations
//	interop/gonumblocks/  — the same operations on gonum mat types
//	examples/             — runnable scenario
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}})
//	a, b, c, _ := blocks.PartitionMatrix(m, []int{1})
//	full, _ := blocks.Reassemble(a, []int{1})
//
// See the subpackage docs for options, errors and complexity.
package modeblocks
