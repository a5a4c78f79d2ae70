package suppress

import (
	"fmt"
)

// Candidate is a single scored detection proposal passed to a Suppressor.
// Coordinates are absolute image pixels with X1 <= X2 and Y1 <= Y2 expected,
// however no validation is performed on them.  Candidates sharing the same
// SetID originate from the same proposal set and are exempt from suppressing
// each other when using the Set-NMS method.
type Candidate struct {
	// X1 and Y1 are the coordinates of the boxes top left corner
	X1, Y1 float32
	// X2 and Y2 are the coordinates of the boxes bottom right corner
	X2, Y2 float32
	// Score is the confidence score of the detection
	Score float32
	// SetID identifies the proposal set the candidate originates from
	SetID int64
}

// Method defines the suppression algorithm variant to run
type Method int

const (
	// MethodHard is classic greedy NMS, overlapping boxes are suppressed
	// regardless of which proposal set they came from
	MethodHard Method = iota + 1
	// MethodSet is Set-NMS, overlapping boxes from the same proposal set
	// never suppress each other
	MethodSet
)

// Config selects the suppression method and its IoU threshold
type Config struct {
	// Method is the algorithm variant to use
	Method Method
	// IoUThreshold is the maximum allowed Intersection over Union (IoU)
	// between two boxes for both to be kept
	IoUThreshold float32
}

// Suppressor runs non-maximum suppression over a list of candidates and
// returns the indices into the input that survive, in the order they were
// selected (descending score)
type Suppressor interface {
	Suppress(cands []Candidate) []int
}

// New returns a Suppressor for the given configuration.  The Method tag is
// validated here, an unknown method is an error.  IoUThreshold is passed
// through without range validation, values outside [0,1] give the degenerate
// behaviour of suppressing nothing or everything across sets.
func New(c Config) (Suppressor, error) {

	switch c.Method {
	case MethodHard:
		return NewHardNMS(HardNMSParams{IoUThreshold: c.IoUThreshold}), nil

	case MethodSet:
		return NewSetNMS(SetNMSParams{IoUThreshold: c.IoUThreshold}), nil

	default:
		return nil, fmt.Errorf("unknown suppression method: %d", c.Method)
	}
}
