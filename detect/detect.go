// Package detect defines the layout detection boundary.
//
// Outline extraction consumes a stream of labeled regions produced by a
// neural layout-detection model. Model invocation itself lives outside
// this module; implementations of [Detector] adapt whatever runtime
// hosts the model (a sidecar process, a serving endpoint, a cgo
// binding) to the element stream the hierarchy engine expects.
//
// The helpers in this package reproduce the post-processing every
// detector binding needs: confidence filtering, restriction to the
// heading-capable label set, and top-to-bottom ordering.
package detect

import (
	"context"
	"image"

	"github.com/tsawler/outliner/model"
)

// HeadingLabels is the label set retained for outline extraction. The
// detection model emits many more classes (figures, formulas, page
// furniture); only these can contribute a title or heading.
var HeadingLabels = []string{
	model.LabelTitle,
	model.LabelParagraphTitle,
	model.LabelDocTitle,
	model.LabelHeading,
	model.LabelSectionTitle,
	model.LabelFigureTitle,
	model.LabelTableTitle,
}

// Detector locates layout regions on a rendered page image. The page
// argument is the 1-indexed page number the image was rendered from;
// implementations stamp it onto every returned element.
//
// Returned elements need not be filtered or ordered; callers apply
// [Threshold], [Headings] and [SortTopToBottom] as required.
type Detector interface {
	Detect(ctx context.Context, img image.Image, page int) ([]model.LayoutElement, error)
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(ctx context.Context, img image.Image, page int) ([]model.LayoutElement, error)

// Detect calls f.
func (f DetectorFunc) Detect(ctx context.Context, img image.Image, page int) ([]model.LayoutElement, error) {
	return f(ctx, img, page)
}

// Threshold returns the elements whose confidence score is at least
// min, preserving input order.
func Threshold(elements []model.LayoutElement, min float64) []model.LayoutElement {
	var kept []model.LayoutElement
	for _, elem := range elements {
		if elem.Score >= min {
			kept = append(kept, elem)
		}
	}
	return kept
}

// Headings returns the elements carrying a heading-capable label.
func Headings(elements []model.LayoutElement) []model.LayoutElement {
	return model.FilterByLabel(elements, HeadingLabels...)
}

// SortTopToBottom orders elements by vertical centroid within their
// page. It delegates to the model package's stable reading-order sort.
func SortTopToBottom(elements []model.LayoutElement) {
	model.SortReadingOrder(elements)
}
