// SPDX-License-Identifier: MIT

package indexset_test

import (
	"testing"

	"github.com/katalvlaran/modeblocks/indexset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscendingComplement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		idx  []int
		n    int
		want []int
	}{
		{"empty delete set", nil, 4, []int{0, 1, 2, 3}},
		{"single", []int{1}, 3, []int{0, 2}},
		{"unsorted delete set", []int{3, 0}, 5, []int{1, 2, 4}},
		{"everything deleted", []int{2, 0, 1}, 3, []int{}},
		{"zero dimension", nil, 0, []int{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := indexset.AscendingComplement(tc.idx, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAsGiven(t *testing.T) {
	t.Parallel()

	idx := []int{4, 1, 3}
	got := indexset.AsGiven(idx)
	assert.Equal(t, []int{4, 1, 3}, got)

	got[0] = 0
	assert.Equal(t, 4, idx[0], "AsGiven must copy")

	assert.NotNil(t, indexset.AsGiven(nil))
	assert.Empty(t, indexset.AsGiven(nil))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		idx     []int
		n       int
		wantErr bool
	}{
		{"valid", []int{2, 0}, 3, false},
		{"empty", nil, 0, false},
		{"negative", []int{-1}, 3, true},
		{"equal to n", []int{3}, 3, true},
		{"duplicate", []int{1, 2, 1}, 3, true},
		{"negative dimension", nil, -1, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := indexset.Validate(tc.idx, tc.n)
			if tc.wantErr {
				require.ErrorIs(t, err, indexset.ErrInvalidIndex)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAscendingComplement_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	// A set-based complement would silently accept [1, 1]; it must not.
	_, err := indexset.AscendingComplement([]int{1, 1}, 3)
	require.ErrorIs(t, err, indexset.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "duplicate entry 1 at position 1")
}

func TestNewSplit(t *testing.T) {
	t.Parallel()

	s, err := indexset.NewSplit([]int{3, 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.N)
	assert.Equal(t, []int{0, 2, 4}, s.Kept)
	assert.Equal(t, []int{3, 1}, s.Deleted)
	assert.Equal(t, 2, s.K())
	assert.Equal(t, s.N, len(s.Kept)+s.K())

	_, err = indexset.NewSplit([]int{5}, 5)
	require.ErrorIs(t, err, indexset.ErrInvalidIndex)
}
