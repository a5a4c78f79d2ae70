package suppress

import (
	"gonum.org/v1/gonum/mat"
)

// OverlapMatrix returns the symmetric pairwise IoU matrix of the candidates
// using the same pixel inclusive arithmetic as the suppression kernels.
// Entry (i,j) is the IoU between candidate i and candidate j, the diagonal
// is 1 for any box with positive area.  Returns nil when cands is empty.
//
// The matrix is a diagnostic aid for tuning suppression thresholds, the
// kernels themselves recompute overlaps pair by pair during the greedy loop
// since most pairs are never visited.
func OverlapMatrix(cands []Candidate) *mat.Dense {

	n := len(cands)

	if n == 0 {
		return nil
	}

	areas := make([]float32, n)

	for i, c := range cands {
		areas[i] = boxArea(c.X1, c.Y1, c.X2, c.Y2)
	}

	ious := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {

			iou := float64(calculateOverlap(cands[i], cands[j], areas[i], areas[j]))

			ious.Set(i, j, iou)
			ious.Set(j, i, iou)
		}
	}

	return ious
}
