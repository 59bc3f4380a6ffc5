package verso

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestConstrainOffsetBoundsInvariant(t *testing.T) {
	const w, h = 1000.0, 1500.0
	scales := []float64{1, 1.01, 1.5, 2, 3, 4}
	candidates := []Offset{
		{0, 0},
		{10, -10},
		{1e6, 1e6},
		{-1e6, -1e6},
		{499.9, -750.1},
		{-3000, 42},
	}
	for _, scale := range scales {
		maxX, maxY := maxPanOffset(scale, w, h)
		for _, cand := range candidates {
			got := constrainOffset(cand, scale, w, h)
			if math.Abs(got.Width) > maxX+testEpsilon {
				t.Errorf("scale %v candidate %+v: |width| %v exceeds %v", scale, cand, got.Width, maxX)
			}
			if math.Abs(got.Height) > maxY+testEpsilon {
				t.Errorf("scale %v candidate %+v: |height| %v exceeds %v", scale, cand, got.Height, maxY)
			}
		}
	}
}

func TestConstrainOffsetIdempotent(t *testing.T) {
	const w, h = 800.0, 600.0
	candidates := []Offset{
		{0, 0},
		{5000, -5000},
		{-120.5, 33.25},
		{399.999, 299.999},
	}
	for _, cand := range candidates {
		once := constrainOffset(cand, 2.0, w, h)
		twice := constrainOffset(once, 2.0, w, h)
		if once != twice {
			t.Errorf("constrain not idempotent for %+v: %+v then %+v", cand, once, twice)
		}
	}
}

func TestConstrainOffsetIdentityAtScale1(t *testing.T) {
	got := constrainOffset(Offset{Width: 123, Height: -456}, 1.0, 800, 600)
	if got != (Offset{}) {
		t.Errorf("constrain at scale 1 = %+v, want zero offset", got)
	}
}

func TestConstrainOffsetExactBounds(t *testing.T) {
	// Scale 3 over an 800x600 viewport: half the overhang is 800 x 600.
	got := constrainOffset(Offset{Width: 9999, Height: -9999}, 3.0, 800, 600)
	if !approxEqual(got.Width, 800, testEpsilon) || !approxEqual(got.Height, -600, testEpsilon) {
		t.Errorf("constrain = %+v, want (800, -600)", got)
	}

	// In-bounds candidates pass through untouched.
	in := Offset{Width: -700, Height: 599}
	if got := constrainOffset(in, 3.0, 800, 600); got != in {
		t.Errorf("in-bounds candidate modified: %+v -> %+v", in, got)
	}
}

func TestMaxPanOffsetBelowScale1(t *testing.T) {
	maxX, maxY := maxPanOffset(0.5, 800, 600)
	if maxX != 0 || maxY != 0 {
		t.Errorf("maxPanOffset below scale 1 = (%v, %v), want (0, 0)", maxX, maxY)
	}
}

func BenchmarkConstrainOffset(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = constrainOffset(Offset{Width: 512, Height: -512}, 2.5, 1024, 768)
	}
}
