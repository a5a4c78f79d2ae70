package suppress

import (
	"math"
	"sort"
)

// boxArea returns the area of a box using the pixel inclusive convention,
// a degenerate box with X1 == X2 covers one pixel column and has area equal
// to its height, not zero.  This convention must be kept as-is for
// compatibility with the reference detector outputs.
func boxArea(x1, y1, x2, y2 float32) float32 {
	return (x2 - x1 + 1) * (y2 - y1 + 1)
}

// calculateOverlap works out the Intersection over Union (IoU) value of two
// boxes using pixel inclusive arithmetic.  areaA and areaB are the
// precomputed boxArea values of each box.
func calculateOverlap(a, b Candidate, areaA, areaB float32) float32 {

	w := math.Max(0.0, math.Min(float64(a.X2), float64(b.X2))-math.Max(float64(a.X1), float64(b.X1))+1.0)
	h := math.Max(0.0, math.Min(float64(a.Y2), float64(b.Y2))-math.Max(float64(a.Y1), float64(b.Y1))+1.0)
	intersection := w * h

	union := float64(areaA) + float64(areaB) - intersection

	if union <= 0 {
		return 0.0
	}

	return float32(intersection / union)
}

// sortByScore returns the candidate indices ordered by score descending.
// Candidates with equal scores keep their relative input order, so the
// selection sequence is deterministic for any input.
func sortByScore(cands []Candidate) []int {

	order := make([]int, len(cands))

	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return cands[order[i]].Score > cands[order[j]].Score
	})

	return order
}

// clamp restricts the value x to be within the range min and max and converts
// the result to float32
func clamp(val float32, min, max uint32) float32 {

	if val > float32(min) {

		if val < float32(max) {
			return val
		}

		return float32(max)
	}

	return float32(min)
}
