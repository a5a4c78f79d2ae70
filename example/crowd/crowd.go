/*
Example code showing how to run Set-NMS suppression over raw crowd detector
output and render the surviving detections on the source image
*/
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"gocv.io/x/gocv"

	crowdpost "github.com/crowdkit/go-crowdpost"
	"github.com/crowdkit/go-crowdpost/render"
	"github.com/crowdkit/go-crowdpost/suppress"
)

func main() {

	// read in cli flags
	detFile := flag.String("d", "detections.f32", "Raw float32 detection file of [x1 y1 x2 y2 score setID] records")
	imgFile := flag.String("i", "crowd.jpg", "Image file the detections were run on")
	labelFile := flag.String("l", "labels.txt", "Text file containing class labels")
	saveFile := flag.String("o", "crowd-out.jpg", "The output image file to save result to")
	iouThr := flag.Float64("iou", 0.5, "Set-NMS IoU threshold")
	scoreThr := flag.Float64("score", 0.05, "Confidence score threshold")
	maxObj := flag.Int("max", -1, "Maximum number of detections to keep, -1 for unlimited")

	flag.Parse()

	buf, err := loadDetectionFile(*detFile)

	if err != nil {
		log.Fatal("Error loading detection file: ", err)
	}

	cands, err := crowdpost.DecodeCandidates(buf)

	if err != nil {
		log.Fatal("Error decoding candidates: ", err)
	}

	log.Printf("Loaded %d candidate detections\n", len(cands))

	labels, err := crowdpost.LoadLabels(*labelFile)

	if err != nil {
		log.Fatal("Error loading labels: ", err)
	}

	// load image to draw detections on
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	// build the aligned candidate arrays for the detection pipeline, the
	// example detector is single class so every candidate is class 0
	boxes := make([]float32, 0, len(cands)*4)
	scores := make([]float32, 0, len(cands))
	classIDs := make([]int, 0, len(cands))
	setIDs := make([]int64, 0, len(cands))

	for _, c := range cands {
		boxes = append(boxes, c.X1, c.Y1, c.X2, c.Y2)
		scores = append(scores, c.Score)
		classIDs = append(classIDs, 0)
		setIDs = append(setIDs, c.SetID)
	}

	pipeline := suppress.NewMultiClass(suppress.MultiClassParams{
		ScoreThreshold:  float32(*scoreThr),
		IoUThreshold:    float32(*iouThr),
		MaxObjectNumber: *maxObj,
		ImgWidth:        uint32(img.Cols()),
		ImgHeight:       uint32(img.Rows()),
	})

	results, err := pipeline.DetectObjects(boxes, scores, classIDs, setIDs)

	if err != nil {
		log.Fatal("Error running suppression: ", err)
	}

	log.Printf("Kept %d detections after Set-NMS\n", len(results))

	for _, det := range results {
		fmt.Printf("%s @ (%d %d %d %d) %f set=%d\n",
			labels[det.Class], det.Box.Left, det.Box.Top, det.Box.Right,
			det.Box.Bottom, det.Probability, det.SetID)
	}

	// report the fraction of the scene covered by detections
	coverage := crowdpost.CoverageArea(results)
	imgArea := float64(img.Cols() * img.Rows())

	if imgArea > 0 {
		log.Printf("Crowd coverage: %.1f%% of image\n", coverage/imgArea*100)
	}

	render.DetectionBoxes(&img, results, labels, render.DefaultFont(), 2)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *saveFile)
	}

	log.Println("Saved result image to: ", *saveFile)
}

// loadDetectionFile reads a raw little endian float32 file into a buffer
func loadDetectionFile(file string) ([]float32, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("file length %d is not a multiple of 4 bytes", len(data))
	}

	buf := make([]float32, len(data)/4)

	for i := range buf {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		buf[i] = math.Float32frombits(bits)
	}

	return buf, nil
}
