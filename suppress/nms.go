package suppress

// HardNMS defines the struct for the classic greedy NMS suppression kernel.
// It uses the same pixel inclusive overlap arithmetic as SetNMS but carries
// no set exemption, overlapping boxes suppress each other regardless of
// which proposal set they came from.
type HardNMS struct {
	// Params are the suppression configuration parameters
	Params HardNMSParams
}

// HardNMSParams defines the struct containing the HardNMS parameters to use
// for suppression operations
type HardNMSParams struct {
	// IoUThreshold is the maximum allowed Intersection over Union (IoU)
	// between two bounding boxes for both to be kept
	IoUThreshold float32
}

// NewHardNMS returns an instance of the HardNMS suppression kernel
func NewHardNMS(p HardNMSParams) *HardNMS {
	return &HardNMS{
		Params: p,
	}
}

// Suppress runs classic greedy suppression over the candidates and returns
// the indices into the input slice that survive, in selection order.  Order
// and tie-break semantics match SetNMS.Suppress.
func (h *HardNMS) Suppress(cands []Candidate) []int {

	keep := make([]int, 0, len(cands))

	if len(cands) == 0 {
		return keep
	}

	areas := make([]float32, len(cands))

	for i, c := range cands {
		areas[i] = boxArea(c.X1, c.Y1, c.X2, c.Y2)
	}

	order := sortByScore(cands)

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

			if iou > h.Params.IoUThreshold {
				active[j] = false
			}
		}
	}

	return keep
}
