package suppress

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the box, score, class, and set ID arrays
// passed to the detection pipeline are not aligned in length
var ErrInvalidInput = errors.New("invalid input")

// MultiClass defines the struct for the detection pipeline wrapping the
// Set-NMS kernel.  It applies the confidence score threshold, runs set aware
// suppression over the survivors, then collates the kept boxes into
// detection results with an optional top-K cap by score.
type MultiClass struct {
	// Params are the pipeline configuration parameters
	Params MultiClassParams
	// kernel is the Set-NMS suppression kernel
	kernel *SetNMS
	// idGen is a counter that increments and provides the next number
	// for each detection result ID
	idGen *idGenerator
}

// MultiClassParams defines the struct containing the MultiClass parameters
// to use for the detection pipeline
type MultiClassParams struct {
	// ScoreThreshold is the minimum confidence score required for a
	// candidate box to be considered for suppression.  The comparison is
	// strict, a candidate with score equal to the threshold is dropped.
	ScoreThreshold float32
	// IoUThreshold is the Set-NMS suppression threshold
	IoUThreshold float32
	// MaxObjectNumber is the maximum number of detection results that can
	// be returned after suppression.  A negative value means unlimited.
	MaxObjectNumber int
	// ImgWidth and ImgHeight are the source image dimensions used to clamp
	// the result bounding boxes.  When zero no clamping is applied.
	ImgWidth  uint32
	ImgHeight uint32
}

// MultiClassCrowdParams returns an instance of MultiClassParams configured
// with the default values used by the CrowdDet crowd detector featuring:
// - Score Threshold: 0.05
// - IoU Threshold: 0.5
// - Maximum Object Number: unlimited
func MultiClassCrowdParams() MultiClassParams {
	return MultiClassParams{
		ScoreThreshold:  0.05,
		IoUThreshold:    0.5,
		MaxObjectNumber: -1,
	}
}

// NewMultiClass returns an instance of the MultiClass detection pipeline
func NewMultiClass(p MultiClassParams) *MultiClass {
	return &MultiClass{
		Params: p,
		kernel: NewSetNMS(SetNMSParams{IoUThreshold: p.IoUThreshold}),
		idGen:  newIDGenerator(),
	}
}

// DetectObjects takes the aligned candidate arrays produced upstream and
// runs the full Set-NMS detection pipeline.  boxes is a flat array of
// [x1 y1 x2 y2] records so it must be four times the length of scores.
// scores, classIDs and setIDs hold one entry per candidate.  Results are
// returned in suppression selection order unless MaxObjectNumber applies,
// in which case they are re-sorted by score descending before the cap.
// A nil result with nil error means no objects were detected.
func (m *MultiClass) DetectObjects(boxes []float32, scores []float32,
	classIDs []int, setIDs []int64) ([]DetectResult, error) {

	if len(boxes) != len(scores)*4 || len(scores) != len(classIDs) ||
		len(scores) != len(setIDs) {
		return nil, fmt.Errorf("%w: %d box values, %d scores, %d class ids, %d set ids",
			ErrInvalidInput, len(boxes), len(scores), len(classIDs), len(setIDs))
	}

	// filter out boxes with low confidence scores
	cands := make([]Candidate, 0, len(scores))
	// srcIdx maps a filtered candidate back to its upstream array index
	srcIdx := make([]int, 0, len(scores))

	for i, score := range scores {

		if score > m.Params.ScoreThreshold {
			cands = append(cands, Candidate{
				X1:    boxes[i*4+0],
				Y1:    boxes[i*4+1],
				X2:    boxes[i*4+2],
				Y2:    boxes[i*4+3],
				Score: score,
				SetID: setIDs[i],
			})
			srcIdx = append(srcIdx, i)
		}
	}

	if len(cands) == 0 {
		// no object detected
		return nil, nil
	}

	keep := m.kernel.Suppress(cands)

	// collate objects into a result for returning
	group := make([]DetectResult, 0, len(keep))

	for _, n := range keep {

		c := cands[n]

		box := BoxRect{
			Left:   int(c.X1),
			Top:    int(c.Y1),
			Right:  int(c.X2),
			Bottom: int(c.Y2),
		}

		if m.Params.ImgWidth > 0 && m.Params.ImgHeight > 0 {
			box = BoxRect{
				Left:   int(clamp(c.X1, 0, m.Params.ImgWidth)),
				Top:    int(clamp(c.Y1, 0, m.Params.ImgHeight)),
				Right:  int(clamp(c.X2, 0, m.Params.ImgWidth)),
				Bottom: int(clamp(c.Y2, 0, m.Params.ImgHeight)),
			}
		}

		group = append(group, DetectResult{
			Class:       classIDs[srcIdx[n]],
			Box:         box,
			Probability: c.Score,
			SetID:       c.SetID,
			ID:          m.idGen.getNext(),
		})
	}

	// the top-K cap is a separate step downstream of suppression, results
	// are re-sorted by score before truncating
	if m.Params.MaxObjectNumber >= 0 && len(group) > m.Params.MaxObjectNumber {
		sortResultsByScore(group)
		group = group[:m.Params.MaxObjectNumber]
	}

	return group, nil
}
