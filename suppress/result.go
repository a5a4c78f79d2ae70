package suppress

import (
	"sort"
	"sync"
)

// BoxRect are the dimensions of the bounding box of a detect object
type BoxRect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DetectResult defines the attributes of a single object detected
type DetectResult struct {
	// Class is the line number in the labels file the Model was trained on
	// defining the Class of the detected object
	Class int
	// Box are the bounding box dimensions of the object location
	Box BoxRect
	// Probability is the confidence score of the object detected
	Probability float32
	// SetID is the proposal set the detection originated from
	SetID int64
	// ID is a unique ID assigned to the detection result
	ID int64
}

// sortResultsByScore orders the detection results by probability descending.
// Equal probabilities keep their relative order.
func sortResultsByScore(results []DetectResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})
}

// idGenerator holds a counter for generating the next incremental ID number
type idGenerator struct {
	id int64
	sync.Mutex
}

func newIDGenerator() *idGenerator {
	return &idGenerator{}
}

// getNext returns the next incremental number
func (g *idGenerator) getNext() int64 {
	g.Lock()
	defer g.Unlock()
	g.id++
	return g.id
}
