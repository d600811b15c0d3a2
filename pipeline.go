package outliner

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/tsawler/outliner/detect"
	"github.com/tsawler/outliner/hierarchy"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/render"
)

// ErrNoDetector is returned when a pipeline is run without a layout
// detector binding.
var ErrNoDetector = errors.New("no layout detector configured")

// ErrNoRenderer is returned when a pipeline is run without a page
// renderer binding.
var ErrNoRenderer = errors.New("no page renderer configured")

// RegionRecognizer recovers text from a detected region of a rendered
// page. ocr.Client satisfies this interface.
type RegionRecognizer interface {
	RecognizeRegion(img image.Image, bbox model.BBox) (string, error)
}

// Pipeline ties the collaborator bindings together into per-document
// outline extraction. Configure it fluently and reuse it across
// documents; it is safe for concurrent use when its collaborators are.
type Pipeline struct {
	detector   detect.Detector
	renderer   render.PageRenderer
	recognizer RegionRecognizer
	options    ExtractOptions

	// swapped out in tests
	pageCount func(path string) (int, error)
}

// New creates a pipeline from collaborator bindings with default
// options.
func New(detector detect.Detector, renderer render.PageRenderer) *Pipeline {
	return &Pipeline{
		detector:  detector,
		renderer:  renderer,
		options:   defaultOptions(),
		pageCount: countPages,
	}
}

func countPages(path string) (int, error) {
	info, err := render.Info(path)
	if err != nil {
		return 0, err
	}
	return info.Pages, nil
}

// WithOCR configures a recognizer used to fill in text for regions the
// detector returned without any. Returns a new pipeline; the receiver
// is unchanged.
func (p *Pipeline) WithOCR(r RegionRecognizer) *Pipeline {
	clone := *p
	clone.options = p.options.clone()
	clone.recognizer = r
	return &clone
}

// DPI sets the page rendering resolution. The classifier height
// thresholds are calibrated for the default of 200.
func (p *Pipeline) DPI(dpi float64) *Pipeline {
	clone := *p
	clone.options = p.options.clone()
	clone.options.dpi = dpi
	return &clone
}

// Confidence sets the minimum detector score for a region to be
// considered.
func (p *Pipeline) Confidence(min float64) *Pipeline {
	clone := *p
	clone.options = p.options.clone()
	clone.options.confidence = min
	return &clone
}

// Engine sets the hierarchy engine configuration (title threshold and
// pattern table).
func (p *Pipeline) Engine(cfg hierarchy.Config) *Pipeline {
	clone := *p
	clone.options = p.options.clone()
	clone.options.engineConfig = cfg
	return &clone
}

// Outline extracts the document outline from a PDF file: every page is
// rendered, run through layout detection, filtered to heading-capable
// regions, text-filled via OCR where the detector supplied none, and
// finally classified by the hierarchy engine.
func (p *Pipeline) Outline(ctx context.Context, pdfPath string) (model.Outline, error) {
	if p.detector == nil {
		return model.Outline{}, ErrNoDetector
	}
	if p.renderer == nil {
		return model.Outline{}, ErrNoRenderer
	}

	pages, err := p.pageCount(pdfPath)
	if err != nil {
		return model.Outline{}, err
	}

	var all []model.LayoutElement
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return model.Outline{}, err
		}

		img, err := p.renderer.RenderPage(ctx, pdfPath, page, p.options.dpi)
		if err != nil {
			return model.Outline{}, fmt.Errorf("failed to render page %d: %w", page, err)
		}

		elements, err := p.detector.Detect(ctx, img, page)
		if err != nil {
			return model.Outline{}, fmt.Errorf("layout detection failed on page %d: %w", page, err)
		}

		elements = detect.Threshold(elements, p.options.confidence)
		elements = detect.Headings(elements)
		p.fillText(img, elements)

		all = append(all, elements...)
	}

	detect.SortTopToBottom(all)

	engine := hierarchy.NewEngineWithConfig(p.options.engineConfig)
	return engine.ExtractOutline(all), nil
}

// Process is Outline under the name the batch package expects; it makes
// *Pipeline a batch.DocumentProcessor.
func (p *Pipeline) Process(ctx context.Context, pdfPath string) (model.Outline, error) {
	return p.Outline(ctx, pdfPath)
}

// fillText recognizes text for regions the detector returned empty.
// Recognition failures leave the text empty; the engine treats such
// regions as degenerate and drops them.
func (p *Pipeline) fillText(img image.Image, elements []model.LayoutElement) {
	if p.recognizer == nil {
		return
	}
	for i := range elements {
		if strings.TrimSpace(elements[i].Text) != "" {
			continue
		}
		text, err := p.recognizer.RecognizeRegion(img, elements[i].BBox)
		if err != nil {
			continue
		}
		elements[i].Text = text
	}
}
