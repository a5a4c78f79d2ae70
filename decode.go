package crowdpost

import (
	"fmt"

	"github.com/crowdkit/go-crowdpost/suppress"
)

// CandidateStride is the number of values making up one candidate record in
// a raw detection output buffer, being the four box corner coordinates
// followed by the confidence score and the proposal set index
const CandidateStride = 6

// DecodeCandidates converts a flat float32 detection output buffer into
// candidate records.  The buffer layout per record is
// [x1 y1 x2 y2 score setID] and its length must be a multiple of
// CandidateStride.  The set index is truncated to an integer identifier.
func DecodeCandidates(buf []float32) ([]suppress.Candidate, error) {

	if len(buf)%CandidateStride != 0 {
		return nil, fmt.Errorf("candidate buffer length %d is not a multiple of %d",
			len(buf), CandidateStride)
	}

	cands := make([]suppress.Candidate, 0, len(buf)/CandidateStride)

	for i := 0; i < len(buf); i += CandidateStride {
		cands = append(cands, suppress.Candidate{
			X1:    buf[i],
			Y1:    buf[i+1],
			X2:    buf[i+2],
			Y2:    buf[i+3],
			Score: buf[i+4],
			SetID: int64(buf[i+5]),
		})
	}

	return cands, nil
}

// DecodeCandidatesFP16 converts a raw FP16 detection output buffer into
// candidate records using the same [x1 y1 x2 y2 score setID] layout as
// DecodeCandidates.  Each uint16 holds the IEEE 754 half precision bits of
// one value and is converted through the precomputed lookup table.
func DecodeCandidatesFP16(buf []uint16) ([]suppress.Candidate, error) {

	if len(buf)%CandidateStride != 0 {
		return nil, fmt.Errorf("candidate buffer length %d is not a multiple of %d",
			len(buf), CandidateStride)
	}

	f32 := make([]float32, len(buf))

	for i, bits := range buf {
		f32[i] = f16LookupTable[bits]
	}

	return DecodeCandidates(f32)
}
