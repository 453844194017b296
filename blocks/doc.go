// Package blocks splits symmetric matrices and vectors along a set of
// indices to delete, and puts reduced objects back into full size.
//
// Eight operations, in two families:
//
//	                 single             batched (leading weight axis)
//	partition  PartitionMatrix     PartitionMatrixBatch
//	           PartitionVector     PartitionVectorBatch
//	reassemble Reassemble          ReassembleBatch
//	           ReassembleVector    ReassembleVectorBatch
//
// Index order conventions (see package indexset):
//
//   - kept indices are always the ascending complement of idx;
//   - deleted indices keep the caller's order, so the C block of a matrix
//     partition and the vb part of a vector partition follow idx as given.
//
// Fill convention: reassembled matrices carry 1 on every deleted diagonal
// entry and 0 on every cross entry; reassembled vectors carry 0 at deleted
// positions.
//
// All operations are pure: inputs are never mutated and each result owns
// fresh storage. Validation completes before any allocation and errors match
// ErrInvalidIndex, ErrShapeMismatch or ErrDimensionMismatch via errors.Is.
// Batched operations may fan out across the batch axis (WithWorkers); the
// result is identical for every worker count.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}})
//	a, b, c, _ := blocks.PartitionMatrix(m, []int{1})
//	// a = [[1 3] [3 6]], b = [[2] [5]], c = [[4]]
//	full, _ := blocks.Reassemble(a, []int{1})
//	// full = [[1 0 3] [0 1 0] [3 0 6]]
package blocks
