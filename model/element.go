package model

import "sort"

// Layout class labels emitted by the detection model. The detector may
// produce additional classes (figures, tables, formulas and so on); only
// the labels listed here carry meaning for outline extraction.
const (
	LabelDocTitle       = "doc_title"
	LabelTitle          = "title"
	LabelParagraphTitle = "paragraph_title"
	LabelText           = "text"
	LabelHeading        = "heading"
	LabelSectionTitle   = "section_title"
	LabelFigureTitle    = "figure_title"
	LabelTableTitle     = "table_title"
)

// LayoutElement represents one detected visual region on a page.
//
// Elements arrive from the layout detection collaborator already filtered
// to the configured confidence threshold, with Text populated from
// embedded PDF text extraction or OCR. Missing fields degrade to zero
// values rather than failing: an element with no label or text simply
// never qualifies as a title or heading candidate.
type LayoutElement struct {
	// Label is the layout class assigned by the detector
	Label string

	// Text is the extracted string content; may be empty or contain
	// OCR artifacts
	Text string

	// BBox is the region's bounding box in page-pixel coordinates
	BBox BBox

	// Score is the detector confidence in [0, 1]
	Score float64

	// Page is the 1-indexed page number the region was detected on
	Page int

	// Derived geometry, computed once at construction
	Width       float64
	Height      float64
	Area        float64
	AspectRatio float64
	CenterX     float64
	CenterY     float64
}

// NewLayoutElement creates a layout element and computes its derived
// geometry from the bounding box.
func NewLayoutElement(label, text string, bbox BBox, score float64, page int) LayoutElement {
	center := bbox.Center()
	return LayoutElement{
		Label:       label,
		Text:        text,
		BBox:        bbox,
		Score:       score,
		Page:        page,
		Width:       bbox.Width(),
		Height:      bbox.Height(),
		Area:        bbox.Area(),
		AspectRatio: bbox.AspectRatio(),
		CenterX:     center.X,
		CenterY:     center.Y,
	}
}

// FilterByLabel returns the elements whose label is in the given set,
// preserving input order.
func FilterByLabel(elements []LayoutElement, labels ...string) []LayoutElement {
	allowed := make(map[string]bool, len(labels))
	for _, l := range labels {
		allowed[l] = true
	}

	var filtered []LayoutElement
	for _, elem := range elements {
		if allowed[elem.Label] {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

// OnPage returns the elements detected on the given 1-indexed page,
// preserving input order.
func OnPage(elements []LayoutElement, page int) []LayoutElement {
	var filtered []LayoutElement
	for _, elem := range elements {
		if elem.Page == page {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

// SortReadingOrder sorts elements in place into document reading order:
// ascending page, then ascending vertical centroid within a page. The
// sort is stable so that elements sharing a page and centroid keep their
// detector order.
func SortReadingOrder(elements []LayoutElement) {
	sort.SliceStable(elements, func(i, j int) bool {
		if elements[i].Page != elements[j].Page {
			return elements[i].Page < elements[j].Page
		}
		return elements[i].CenterY < elements[j].CenterY
	})
}
