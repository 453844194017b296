// SPDX-License-Identifier: MIT
package blocks_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/modeblocks/blocks"
	"github.com/katalvlaran/modeblocks/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionVector_WorkedExample(t *testing.T) {
	t.Parallel()

	v := []float64{10, 20, 30, 40}
	va, vb, err := blocks.PartitionVector(v, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40}, va)
	assert.Equal(t, []float64{10, 30}, vb)

	full, err := blocks.ReassembleVector(va, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 0, 40}, full)
}

func TestPartitionVector_Orders(t *testing.T) {
	t.Parallel()

	v := []float64{10, 20, 30, 40}
	va, vb, err := blocks.PartitionVector(v, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 30}, va, "kept entries are ascending")
	assert.Equal(t, []float64{40, 20}, vb, "deleted entries follow idx")
	assert.Equal(t, []float64{10, 20, 30, 40}, v)
}

func TestPartitionVector_Boundaries(t *testing.T) {
	t.Parallel()

	va, vb, err := blocks.PartitionVector([]float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, va)
	assert.NotNil(t, vb)
	assert.Empty(t, vb)

	va, vb, err = blocks.PartitionVector([]float64{1, 2}, []int{1, 0})
	require.NoError(t, err)
	assert.NotNil(t, va)
	assert.Empty(t, va)
	assert.Equal(t, []float64{2, 1}, vb)

	va, vb, err = blocks.PartitionVector[float64](nil, nil)
	require.NoError(t, err)
	assert.Empty(t, va)
	assert.Empty(t, vb)
}

func TestPartitionVector_Errors(t *testing.T) {
	t.Parallel()

	v := []float64{1, 2, 3}
	tests := []struct {
		name string
		idx  []int
		opts []blocks.Option
		want error
	}{
		{"too many indices", []int{0, 1, 2, 0}, nil, blocks.ErrShapeMismatch},
		{"out of range", []int{3}, nil, blocks.ErrInvalidIndex},
		{"negative", []int{-2}, nil, blocks.ErrInvalidIndex},
		{"duplicate", []int{1, 1}, nil, blocks.ErrInvalidIndex},
		{"declared size differs", nil, []blocks.Option{blocks.WithTotalSize(2)}, blocks.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := blocks.PartitionVector(v, tc.idx, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReassembleVector_Errors(t *testing.T) {
	t.Parallel()

	_, err := blocks.ReassembleVector([]float64{1, 2}, []int{3})
	require.ErrorIs(t, err, blocks.ErrInvalidIndex)

	_, err = blocks.ReassembleVector([]float64{1, 2}, []int{2, 2})
	require.ErrorIs(t, err, blocks.ErrInvalidIndex)

	_, err = blocks.ReassembleVector([]float64{1, 2}, []int{0}, blocks.WithTotalSize(5))
	require.ErrorIs(t, err, blocks.ErrDimensionMismatch)

	out, err := blocks.ReassembleVector[float64](nil, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, out)
}

func TestPartitionVectorBatch(t *testing.T) {
	t.Parallel()

	v, err := blocks.StackVectors(
		[]complex128{1, 2, 3, 4},
		[]complex128{5i, 6i, 7i, 8i},
	)
	require.NoError(t, err)

	va, vb, err := blocks.PartitionVectorBatch(v, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]complex128{{2, 4}, {6i, 8i}}, va.ToRows())
	assert.Equal(t, [][]complex128{{3, 1}, {7i, 5i}}, vb.ToRows())

	full, err := blocks.ReassembleVectorBatch(va, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]complex128{{0, 2, 0, 4}, {0, 6i, 0, 8i}}, full.ToRows())
}

func TestPartitionVectorBatch_MatchesSingle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(8)
		nw := 1 + rng.Intn(5)
		rows := make([][]float64, nw)
		for w := range rows {
			rows[w] = make([]float64, n)
			for i := range rows[w] {
				rows[w][i] = rng.NormFloat64()
			}
		}
		v, err := blocks.StackVectors(rows...)
		require.NoError(t, err)
		idx := randomDeleteSet(rng, n)

		va, vb, err := blocks.PartitionVectorBatch(v, idx)
		require.NoError(t, err)
		require.Equal(t, nw, va.Rows())
		require.Equal(t, n-len(idx), va.Cols())
		require.Equal(t, len(idx), vb.Cols())

		back, err := blocks.ReassembleVectorBatch(va, idx)
		require.NoError(t, err)
		for w := 0; w < nw; w++ {
			sa, sb, err := blocks.PartitionVector(rows[w], idx)
			require.NoError(t, err)
			ra, err := va.Row(w)
			require.NoError(t, err)
			rb, err := vb.Row(w)
			require.NoError(t, err)
			require.Equal(t, sa, ra)
			require.Equal(t, sb, rb)

			single, err := blocks.ReassembleVector(sa, idx)
			require.NoError(t, err)
			rf, err := back.Row(w)
			require.NoError(t, err)
			require.Equal(t, single, rf)
		}
	}
}

func TestVectorBatch_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := blocks.PartitionVectorBatch[float64](nil, nil)
	require.ErrorIs(t, err, blocks.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = blocks.ReassembleVectorBatch[float64](nil, nil)
	require.ErrorIs(t, err, blocks.ErrShapeMismatch)

	v, err := blocks.StackVectors([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	_, _, err = blocks.PartitionVectorBatch(v, []int{0, 1, 0})
	require.ErrorIs(t, err, blocks.ErrShapeMismatch)
	_, _, err = blocks.PartitionVectorBatch(v, []int{2})
	require.ErrorIs(t, err, blocks.ErrInvalidIndex)
	_, err = blocks.ReassembleVectorBatch(v, []int{0}, blocks.WithTotalSize(2))
	require.ErrorIs(t, err, blocks.ErrDimensionMismatch)
}
