package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t when got differs from want by more than tol.
func RequireNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// RequireSliceNear fails t when got and want differ in length or when any
// element pair differs by more than tol (absolute).
func RequireSliceNear(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v, want %v (tol %v)", i, got[i], want[i], tol)
		}
	}
}

// RequireFinite fails t if any element of data is NaN or infinite.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
