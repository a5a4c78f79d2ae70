package suppress

import (
	"testing"
)

// equalKeep checks two keep lists match exactly in length and order
func equalKeep(got, want []int) bool {

	if len(got) != len(want) {
		return false
	}

	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

// TestSetNMSEmpty checks an empty candidate list returns an empty keep list
// and not an error or nil panic
func TestSetNMSEmpty(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress(nil)

	if keep == nil {
		t.Fatalf("expected empty keep list, got nil")
	}

	if len(keep) != 0 {
		t.Errorf("expected 0 kept, got %d", len(keep))
	}
}

// TestSetNMSSingle checks a single candidate is always kept
func TestSetNMSSingle(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.1, SetID: 7},
	})

	if !equalKeep(keep, []int{0}) {
		t.Errorf("expected keep [0], got %v", keep)
	}
}

// TestSetNMSSameSetExemption checks two identical boxes (IoU 1.0) sharing a
// proposal set never suppress each other regardless of overlap
func TestSetNMSSameSetExemption(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.9, SetID: 3},
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.8, SetID: 3},
	})

	if !equalKeep(keep, []int{0, 1}) {
		t.Errorf("expected keep [0 1], got %v", keep)
	}
}

// TestSetNMSCrossSetSuppression checks two identical boxes from different
// proposal sets behave like classic NMS, only the higher score survives
func TestSetNMSCrossSetSuppression(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.8, SetID: 1},
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.9, SetID: 2},
	})

	if !equalKeep(keep, []int{1}) {
		t.Errorf("expected keep [1], got %v", keep)
	}
}

// TestSetNMSDisjoint checks boxes with zero overlap are all kept no matter
// their set IDs or scores
func TestSetNMSDisjoint(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 9, Y2: 9, Score: 0.2, SetID: 1},
		{X1: 100, Y1: 100, X2: 109, Y2: 109, Score: 0.9, SetID: 2},
		{X1: 200, Y1: 200, X2: 209, Y2: 209, Score: 0.5, SetID: 1},
	})

	// selection order follows score descending
	if !equalKeep(keep, []int{1, 2, 0}) {
		t.Errorf("expected keep [1 2 0], got %v", keep)
	}
}

// TestSetNMSCrowdScenario runs the canonical crowd case, two boxes from the
// same proposal set covering near identical regions plus a duplicate from
// another set
func TestSetNMSCrowdScenario(t *testing.T) {

	s := NewSetNMS(SetNMSParams{IoUThreshold: 0.5})

	// A and B share set 1 with IoU(A,B) > 0.5, C duplicates A from set 2
	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.9, SetID: 1}, // A
		{X1: 1, Y1: 1, X2: 11, Y2: 11, Score: 0.8, SetID: 1}, // B
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.7, SetID: 2}, // C
	})

	// A kept first, B survives round one through the set exemption, C is
	// suppressed by A
	if !equalKeep(keep, []int{0, 1}) {
		t.Errorf("expected keep [0 1], got %v", keep)
	}
}

// TestSetNMSSingleSet checks suppression is a no-op when every candidate
// shares one proposal set, output is the full input in score order
func TestSetNMSSingleSet(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 20, Y2: 20, Score: 0.3, SetID: 5},
		{X1: 1, Y1: 1, X2: 21, Y2: 21, Score: 0.9, SetID: 5},
		{X1: 2, Y1: 2, X2: 22, Y2: 22, Score: 0.6, SetID: 5},
	})

	if !equalKeep(keep, []int{1, 2, 0}) {
		t.Errorf("expected keep [1 2 0], got %v", keep)
	}
}

// TestSetNMSIdempotent checks running suppression again over the kept subset
// returns the whole subset with no further suppression
func TestSetNMSIdempotent(t *testing.T) {

	s := NewSetNMS(SetNMSParams{IoUThreshold: 0.4})

	cands := []Candidate{
		{X1: 0, Y1: 0, X2: 30, Y2: 30, Score: 0.95, SetID: 1},
		{X1: 5, Y1: 5, X2: 35, Y2: 35, Score: 0.90, SetID: 2},
		{X1: 2, Y1: 2, X2: 32, Y2: 32, Score: 0.85, SetID: 1},
		{X1: 100, Y1: 0, X2: 130, Y2: 30, Score: 0.80, SetID: 3},
		{X1: 101, Y1: 1, X2: 131, Y2: 31, Score: 0.75, SetID: 4},
		{X1: 0, Y1: 100, X2: 30, Y2: 130, Score: 0.70, SetID: 2},
	}

	keep := s.Suppress(cands)

	kept := make([]Candidate, 0, len(keep))

	for _, n := range keep {
		kept = append(kept, cands[n])
	}

	again := s.Suppress(kept)

	if len(again) != len(kept) {
		t.Fatalf("re-suppression removed candidates, got %d of %d",
			len(again), len(kept))
	}

	// the kept subset is already in score descending order so the second
	// pass must select positions in sequence
	for i, n := range again {
		if n != i {
			t.Errorf("expected position %d at index %d, got %d", i, i, n)
		}
	}
}

// TestSetNMSTieBreak checks equal scores select in ascending input index
// order
func TestSetNMSTieBreak(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	// identical boxes and scores across different sets, input order decides
	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.5, SetID: 1},
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.5, SetID: 2},
	})

	if !equalKeep(keep, []int{0}) {
		t.Errorf("expected keep [0], got %v", keep)
	}

	// disjoint boxes with equal scores keep input order in the output
	keep = s.Suppress([]Candidate{
		{X1: 200, Y1: 0, X2: 210, Y2: 10, Score: 0.5, SetID: 1},
		{X1: 100, Y1: 0, X2: 110, Y2: 10, Score: 0.5, SetID: 2},
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.5, SetID: 3},
	})

	if !equalKeep(keep, []int{0, 1, 2}) {
		t.Errorf("expected keep [0 1 2], got %v", keep)
	}
}

// TestSetNMSThresholdRange checks thresholds outside [0,1] are accepted with
// degenerate but defined behaviour
func TestSetNMSThresholdRange(t *testing.T) {

	// IoU can never exceed 1.0 so nothing is suppressed
	s := NewSetNMS(SetNMSParams{IoUThreshold: 1.0})

	keep := s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.9, SetID: 1},
		{X1: 0, Y1: 0, X2: 10, Y2: 10, Score: 0.8, SetID: 2},
	})

	if !equalKeep(keep, []int{0, 1}) {
		t.Errorf("threshold 1.0: expected keep [0 1], got %v", keep)
	}

	// every cross set pair passes the overlap test, even disjoint boxes
	s = NewSetNMS(SetNMSParams{IoUThreshold: -1.0})

	keep = s.Suppress([]Candidate{
		{X1: 0, Y1: 0, X2: 9, Y2: 9, Score: 0.9, SetID: 1},
		{X1: 100, Y1: 100, X2: 109, Y2: 109, Score: 0.8, SetID: 2},
		{X1: 200, Y1: 200, X2: 209, Y2: 209, Score: 0.7, SetID: 1},
	})

	if !equalKeep(keep, []int{0, 2}) {
		t.Errorf("threshold -1.0: expected keep [0 2], got %v", keep)
	}
}

// TestSetNMSDegenerateBoxes checks zero width and inverted boxes are
// processed without validation using the pixel inclusive arithmetic
func TestSetNMSDegenerateBoxes(t *testing.T) {

	s := NewSetNMS(CrowdHumanParams())

	// a point box has area 1 under the inclusive convention, two identical
	// point boxes have IoU 1.0
	keep := s.Suppress([]Candidate{
		{X1: 5, Y1: 5, X2: 5, Y2: 5, Score: 0.9, SetID: 1},
		{X1: 5, Y1: 5, X2: 5, Y2: 5, Score: 0.8, SetID: 2},
	})

	if !equalKeep(keep, []int{0}) {
		t.Errorf("point boxes: expected keep [0], got %v", keep)
	}

	// inverted coordinates produce zero intersection width, both kept
	keep = s.Suppress([]Candidate{
		{X1: 10, Y1: 10, X2: 0, Y2: 0, Score: 0.9, SetID: 1},
		{X1: 10, Y1: 10, X2: 0, Y2: 0, Score: 0.8, SetID: 2},
	})

	if !equalKeep(keep, []int{0, 1}) {
		t.Errorf("inverted boxes: expected keep [0 1], got %v", keep)
	}
}
