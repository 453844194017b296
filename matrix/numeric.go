// SPDX-License-Identifier: MIT

// Package matrix: scalar helpers shared by validators and the numeric policy.
// They operate on every member of Number, including named types such as
// `type Amplitude complex128`.
package matrix

import (
	"math"
	"math/cmplx"
	"reflect"
)

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// nonFinite reports whether v (real or complex) has a NaN or infinite part.
// v-v is NaN exactly when some component of v is NaN or ±Inf, and NaN is the
// only value that compares unequal to itself.
// Complexity: O(1), no allocations.
func nonFinite[T Number](v T) bool {
	d := v - v

	return d != d
}

// magnitude returns |v| as float64: math.Abs for reals, cmplx.Abs for complex.
// Implementation:
//   - Stage 1: fast path on the four predeclared element types.
//   - Stage 2: reflect-based fallback for named element types.
//
// Complexity:
//   - Time O(1); the fallback allocates nothing but is slower.
func magnitude[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex64:
		return cmplx.Abs(complex128(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	default:
		return math.Abs(rv.Float())
	}
}
