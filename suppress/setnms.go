package suppress

// SetNMS defines the struct for the Set-NMS suppression kernel used for
// crowd aware object detection post processing.  Unlike classic NMS it
// protects boxes that originate from the same proposal set from being
// suppressed by each other, even when they overlap heavily, since
// co-located boxes from one set are expected in crowded scenes.
type SetNMS struct {
	// Params are the suppression configuration parameters
	Params SetNMSParams
}

// SetNMSParams defines the struct containing the Set-NMS parameters to use
// for suppression operations
type SetNMSParams struct {
	// IoUThreshold is the maximum allowed Intersection over Union (IoU)
	// between two bounding boxes from different proposal sets for both
	// to be kept
	IoUThreshold float32
}

// CrowdHumanParams returns an instance of SetNMSParams configured with
// default values for a Model trained on the CrowdHuman dataset featuring:
// - IoU Threshold: 0.5
func CrowdHumanParams() SetNMSParams {
	return SetNMSParams{
		IoUThreshold: 0.5,
	}
}

// NewSetNMS returns an instance of the SetNMS suppression kernel
func NewSetNMS(p SetNMSParams) *SetNMS {
	return &SetNMS{
		Params: p,
	}
}

// Suppress runs greedy set aware suppression over the candidates and returns
// the indices into the input slice that survive, in selection order.  The
// working order is by score descending with ties broken by ascending input
// index, so the returned keep list is monotonically non-increasing in score.
// The kernel is stateless and performs no input validation, degenerate boxes
// are processed with whatever area the pixel inclusive arithmetic produces.
func (s *SetNMS) Suppress(cands []Candidate) []int {

	keep := make([]int, 0, len(cands))

	if len(cands) == 0 {
		return keep
	}

	areas := make([]float32, len(cands))

	for i, c := range cands {
		areas[i] = boxArea(c.X1, c.Y1, c.X2, c.Y2)
	}

	order := sortByScore(cands)

	// active flags the order positions still in the candidate pool
	active := make([]bool, len(order))

	for i := range active {
		active[i] = true
	}

	for i := 0; i < len(order); i++ {

		if !active[i] {
			continue
		}

		n := order[i]
		keep = append(keep, n)
		active[i] = false

		for j := i + 1; j < len(order); j++ {

			if !active[j] {
				continue
			}

			m := order[j]

			iou := calculateOverlap(cands[n], cands[m], areas[n], areas[m])

			// a box is only suppressed when it overlaps the kept box
			// AND comes from a different proposal set
			if iou > s.Params.IoUThreshold && cands[m].SetID != cands[n].SetID {
				active[j] = false
			}
		}
	}

	return keep
}
