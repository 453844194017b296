// SPDX-License-Identifier: MIT

package indexset

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrInvalidIndex reports a delete-set entry that is out of [0, n) or repeated.
var ErrInvalidIndex = errors.New("indexset: invalid index")

// maxUniverse is the largest dimension a roaring (32-bit) bitmap can address.
const maxUniverse uint64 = math.MaxUint32

// Split holds both derived orders for one delete set over [0, N).
type Split struct {
	N       int   // full dimension
	Kept    []int // ascending complement of Deleted
	Deleted []int // delete set, caller's order
}

// K returns the number of deleted indices.
func (s Split) K() int { return len(s.Deleted) }

// NewSplit validates idx against n and derives both orders in one pass.
//
// Errors: ErrInvalidIndex (out of range, duplicate, or n outside [0, 2^32)).
// Complexity: O(n + k) time, O(n) space.
func NewSplit(idx []int, n int) (Split, error) {
	del, err := bitmapOf(idx, n)
	if err != nil {
		return Split{}, err
	}

	return Split{N: n, Kept: complementOf(del, n), Deleted: AsGiven(idx)}, nil
}

// Validate checks that idx is a valid delete set for dimension n.
//
// Errors: ErrInvalidIndex.
// Complexity: O(k).
func Validate(idx []int, n int) error {
	_, err := bitmapOf(idx, n)

	return err
}

// AscendingComplement returns {0..n-1} \ idx in ascending numeric order.
// The order of idx has no influence on the result.
//
// Errors: ErrInvalidIndex.
// Complexity: O(n + k).
func AscendingComplement(idx []int, n int) ([]int, error) {
	del, err := bitmapOf(idx, n)
	if err != nil {
		return nil, err
	}

	return complementOf(del, n), nil
}

// AsGiven returns a copy of idx in its given order. The result is never nil.
func AsGiven(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)

	return out
}

// bitmapOf loads idx into a bitmap, rejecting out-of-range and repeated entries.
func bitmapOf(idx []int, n int) (*roaring.Bitmap, error) {
	if n < 0 || uint64(n) > maxUniverse {
		return nil, fmt.Errorf("indexset: dimension %d outside [0, %d]: %w", n, maxUniverse, ErrInvalidIndex)
	}
	bm := roaring.New()
	for pos, v := range idx {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("indexset: entry %d at position %d outside [0, %d): %w", v, pos, n, ErrInvalidIndex)
		}
		if !bm.CheckedAdd(uint32(v)) {
			return nil, fmt.Errorf("indexset: duplicate entry %d at position %d: %w", v, pos, ErrInvalidIndex)
		}
	}

	return bm, nil
}

// complementOf lists [0, n) minus del in ascending order.
func complementOf(del *roaring.Bitmap, n int) []int {
	kept := roaring.New()
	kept.AddRange(0, uint64(n))
	kept.AndNot(del)

	out := make([]int, 0, int(kept.GetCardinality()))
	it := kept.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
