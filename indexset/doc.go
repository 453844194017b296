// Package indexset derives the two index orders used when a set of modes is
// split off a matrix or vector.
//
// Two orders coexist and must not be mixed up:
//
//   - AscendingComplement(idx, n): every index of [0, n) not in idx, in
//     ascending numeric order. Kept rows, kept columns and kept vector
//     entries always follow this order.
//   - AsGiven(idx): the delete set in the caller's order. The removed block,
//     the columns of the cross block and removed vector entries follow it.
//
// Every entry of a delete set must lie in [0, n) and appear once. Violations
// return ErrInvalidIndex; duplicates are rejected, never collapsed.
//
// Membership and the complement are computed on a roaring bitmap, so the
// complement comes out ordered without a sort.
package indexset
