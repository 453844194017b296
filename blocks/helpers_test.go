// SPDX-License-Identifier: MIT
package blocks_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/modeblocks/matrix"
	"github.com/stretchr/testify/require"
)

// threeByThree is the symmetric fixture used by the worked examples.
var threeByThree = [][]float64{
	{1, 2, 3},
	{2, 4, 5},
	{3, 5, 6},
}

func mustRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func mustStack[T matrix.Number](t *testing.T, slices ...*matrix.Dense[T]) *matrix.Batch[T] {
	t.Helper()
	b, err := matrix.Stack(slices...)
	require.NoError(t, err)

	return b
}

func mustSlice[T matrix.Number](t *testing.T, b *matrix.Batch[T], w int) [][]T {
	t.Helper()
	s, err := b.Slice(w)
	require.NoError(t, err)

	return s.ToRows()
}

// randomSymmetric returns an n×n symmetric matrix with entries in [-5, 5).
func randomSymmetric(t *testing.T, rng *rand.Rand, n int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*10 - 5
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// randomComplexSymmetric is randomSymmetric over complex128.
func randomComplexSymmetric(t *testing.T, rng *rand.Rand, n int) *matrix.Dense[complex128] {
	t.Helper()
	m, err := matrix.NewDense[complex128](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := complex(rng.Float64(), rng.Float64())
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// randomDeleteSet picks k distinct indices of [0, n) in random order.
func randomDeleteSet(rng *rand.Rand, n int) []int {
	perm := rng.Perm(n)
	k := rng.Intn(n + 1)

	return perm[:k]
}

// ascendingComplement is an independent reference for the kept order.
func ascendingComplement(idx []int, n int) []int {
	deleted := make(map[int]bool, len(idx))
	for _, i := range idx {
		deleted[i] = true
	}
	kept := []int{}
	for i := 0; i < n; i++ {
		if !deleted[i] {
			kept = append(kept, i)
		}
	}

	return kept
}

func at[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
