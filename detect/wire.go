package detect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/outliner/model"
)

// wireElement is the JSON interchange shape for one detected region, as
// emitted by layout-model sidecars: a flat [x1, y1, x2, y2] box in
// page-pixel coordinates.
type wireElement struct {
	Label string     `json:"label"`
	Text  string     `json:"text"`
	BBox  [4]float64 `json:"bbox"`
	Score float64    `json:"score"`
	Page  int        `json:"page"`
}

// ReadElements decodes a detection dump: a JSON array of detected
// regions covering one or more pages of a document.
func ReadElements(r io.Reader) ([]model.LayoutElement, error) {
	var wire []wireElement
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode detection dump: %w", err)
	}

	elements := make([]model.LayoutElement, 0, len(wire))
	for _, w := range wire {
		bbox := model.BBox{X1: w.BBox[0], Y1: w.BBox[1], X2: w.BBox[2], Y2: w.BBox[3]}
		elements = append(elements, model.NewLayoutElement(w.Label, w.Text, bbox, w.Score, w.Page))
	}
	return elements, nil
}

// LoadElements reads a detection dump from disk.
func LoadElements(path string) ([]model.LayoutElement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open detection dump %s: %w", path, err)
	}
	defer f.Close()

	elements, err := ReadElements(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return elements, nil
}
