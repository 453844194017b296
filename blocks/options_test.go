// SPDX-License-Identifier: MIT
package blocks_test

import (
	"testing"

	"github.com/katalvlaran/modeblocks/blocks"
	"github.com/katalvlaran/modeblocks/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "blocks: WithWorkers: n must be >= 1", func() { blocks.WithWorkers(0) })
	assert.PanicsWithValue(t, "blocks: WithMinParallelBatch: n must be >= 1", func() { blocks.WithMinParallelBatch(0) })
	assert.PanicsWithValue(t, "blocks: WithTotalSize: n must be >= 0", func() { blocks.WithTotalSize(-1) })

	assert.NotPanics(t, func() {
		blocks.WithWorkers(1)
		blocks.WithMinParallelBatch(1)
		blocks.WithTotalSize(0)
	})
}

func TestOptions_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	m := mustRows(t, threeByThree)
	a, _, _, err := blocks.PartitionMatrix(m, []int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {3, 6}}, a.ToRows())
}

func TestOptions_WorkerCountDoesNotChangeResults(t *testing.T) {
	t.Parallel()

	slices := make([]*matrix.Dense[float64], 16)
	for w := range slices {
		rows := [][]float64{
			{float64(w), 1, 2},
			{1, float64(w) * 2, 3},
			{2, 3, float64(w) * 3},
		}
		slices[w] = mustRows(t, rows)
	}
	batch := mustStack(t, slices...)
	idx := []int{2}

	serialA, serialB, serialC, err := blocks.PartitionMatrixBatch(batch, idx, blocks.WithWorkers(1))
	require.NoError(t, err)
	for _, workers := range []int{2, 5, 16, 32} {
		a, b, c, err := blocks.PartitionMatrixBatch(batch, idx,
			blocks.WithWorkers(workers), blocks.WithMinParallelBatch(2))
		require.NoError(t, err)
		for w := 0; w < batch.Len(); w++ {
			assert.Equal(t, mustSlice(t, serialA, w), mustSlice(t, a, w))
			assert.Equal(t, mustSlice(t, serialB, w), mustSlice(t, b, w))
			assert.Equal(t, mustSlice(t, serialC, w), mustSlice(t, c, w))
		}
	}
}
