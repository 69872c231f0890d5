// Package testutil holds helpers shared by the package tests: tolerance
// checks, 3-D rotation matrices and synthetic fields on the sphere.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than eps times max(1, max|want|). The failure
// names the worst grid point, not the first.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	scale := math.Max(1, MaxAbs(want))
	i, diff := WorstDiff(got, want)
	if i >= 0 && !(diff <= eps*scale) {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v * scale %v)", i, got[i], want[i], diff, eps, scale)
	}
}

// RequireFinite fails t on the first NaN or Inf, reporting how many
// non-finite values the slice holds.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	first, bad := -1, 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if first < 0 {
				first = i
			}
			bad++
		}
	}
	if bad > 0 {
		t.Fatalf("%d non-finite values, first at index %d: %v", bad, first, data[first])
	}
}

// WorstDiff returns the index and size of the largest absolute difference
// between got and want. A NaN difference is reported immediately. It returns
// (-1, 0) for empty slices and (-1, +Inf) when the lengths differ.
func WorstDiff(got, want []float64) (int, float64) {
	if len(got) != len(want) {
		return -1, math.Inf(1)
	}
	idx, worst := -1, 0.0
	for i := range got {
		d := math.Abs(got[i] - want[i])
		if math.IsNaN(d) {
			return i, d
		}
		if idx < 0 || d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}

// MaxAbs returns the largest absolute value in x.
func MaxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
