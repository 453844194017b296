// Package gonumblocks runs the blocks operations on gonum matrices.
//
// Simulation code that already keeps covariance matrices as mat.SymDense,
// mean vectors as mat.VecDense and per-weight complex data as mat.CDense can
// call PartitionSym, ReassembleSym, PartitionVec, ReassembleVec and the
// complex batch pair without converting by hand. The index conventions,
// fill values and errors are exactly those of package blocks.
//
// gonum cannot allocate zero-sized matrices or vectors, so an empty block is
// returned as the zero value of its type (IsEmpty() reports true, Dims/Len
// report 0).
package gonumblocks
