package suppress

import (
	"math"
	"testing"
)

// almostEqual checks if two float64 values are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// TestOverlapMatrix checks the pairwise IoU matrix against hand computed
// values using the pixel inclusive convention
func TestOverlapMatrix(t *testing.T) {

	const tolerance = 1e-6

	cands := []Candidate{
		{X1: 0, Y1: 0, X2: 9, Y2: 9, Score: 0.9, SetID: 1},    // area 100
		{X1: 5, Y1: 0, X2: 14, Y2: 9, Score: 0.8, SetID: 2},   // area 100
		{X1: 20, Y1: 20, X2: 29, Y2: 29, Score: 0.7, SetID: 3}, // disjoint
	}

	ious := OverlapMatrix(cands)

	if ious == nil {
		t.Fatal("expected matrix, got nil")
	}

	r, c := ious.Dims()

	if r != 3 || c != 3 {
		t.Fatalf("expected 3x3 matrix, got %dx%d", r, c)
	}

	// diagonal is 1 for boxes with positive area
	for i := 0; i < 3; i++ {
		if !almostEqual(ious.At(i, i), 1.0, tolerance) {
			t.Errorf("expected 1.0 at (%d,%d), got %f", i, i, ious.At(i, i))
		}
	}

	// boxes 0 and 1 have inclusive intersection width
	// min(9,14)-max(0,5)+1 = 5 and height 10, so inter 50 and union 150
	want := 50.0 / 150.0

	if !almostEqual(ious.At(0, 1), want, tolerance) {
		t.Errorf("expected %f at (0,1), got %f", want, ious.At(0, 1))
	}

	if !almostEqual(ious.At(1, 0), ious.At(0, 1), tolerance) {
		t.Errorf("matrix not symmetric: %f vs %f", ious.At(1, 0), ious.At(0, 1))
	}

	if ious.At(0, 2) != 0 || ious.At(1, 2) != 0 {
		t.Errorf("expected zero overlap with disjoint box, got %f and %f",
			ious.At(0, 2), ious.At(1, 2))
	}
}

// TestOverlapMatrixEmpty checks nil is returned for no candidates
func TestOverlapMatrixEmpty(t *testing.T) {

	if m := OverlapMatrix(nil); m != nil {
		t.Errorf("expected nil matrix, got %v", m)
	}
}

// TestBoxAreaInclusive pins the pixel inclusive area convention, a
// degenerate point box has area 1 rather than 0
func TestBoxAreaInclusive(t *testing.T) {

	tests := []struct {
		name           string
		x1, y1, x2, y2 float32
		want           float32
	}{
		{"ten by ten", 0, 0, 9, 9, 100},
		{"point box", 5, 5, 5, 5, 1},
		{"zero width column", 3, 0, 3, 9, 10},
		{"inverted box", 10, 10, 0, 0, 81},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := boxArea(tc.x1, tc.y1, tc.x2, tc.y2); got != tc.want {
				t.Errorf("expected area %f, got %f", tc.want, got)
			}
		})
	}
}
