package crowdpost

import (
	"math"

	clipper "github.com/ctessum/go.clipper"

	"github.com/crowdkit/go-crowdpost/suppress"
)

// CoverageArea returns the union pixel area covered by the detection result
// boxes, overlapping regions are counted once.  Boxes use the same pixel
// inclusive convention as the suppression kernels, a box with Left equal to
// Right covers one pixel column.
//
// This is used for crowd occupancy reporting after suppression, the ratio
// of coverage to image area gives the fraction of the scene occupied by
// detected objects.
func CoverageArea(results []suppress.DetectResult) float64 {

	if len(results) == 0 {
		return 0
	}

	c := clipper.NewClipper(clipper.IoNone)

	for _, det := range results {

		// the +1 extends each box to its exclusive pixel edge so the
		// polygon area matches the inclusive box area
		path := clipper.Path{
			&clipper.IntPoint{X: clipper.CInt(det.Box.Left), Y: clipper.CInt(det.Box.Top)},
			&clipper.IntPoint{X: clipper.CInt(det.Box.Right + 1), Y: clipper.CInt(det.Box.Top)},
			&clipper.IntPoint{X: clipper.CInt(det.Box.Right + 1), Y: clipper.CInt(det.Box.Bottom + 1)},
			&clipper.IntPoint{X: clipper.CInt(det.Box.Left), Y: clipper.CInt(det.Box.Bottom + 1)},
		}

		c.AddPath(path, clipper.PtSubject, true)
	}

	solution, ok := c.Execute1(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)

	if !ok {
		return 0
	}

	// sum the signed areas so holes in the union subtract correctly, then
	// take the magnitude
	var sum float64

	for _, path := range solution {
		sum += signedArea(path)
	}

	return math.Abs(sum)
}

// signedArea computes the shoelace area of a closed path.  Orientation
// determines the sign, outer boundaries and holes have opposite winding.
func signedArea(path clipper.Path) float64 {

	n := len(path)

	if n < 3 {
		return 0
	}

	var sum float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(path[i].X)*float64(path[j].Y) - float64(path[j].X)*float64(path[i].Y)
	}

	return sum / 2
}
