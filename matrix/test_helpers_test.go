// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/modeblocks/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense[T matrix.Number](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// sequential returns an r×c matrix with m[i,j] = i*c + j.
func sequential(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense[float64](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, float64(i*c+j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
