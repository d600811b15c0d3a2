package outliner

import (
	"context"
	"errors"
	"image"
	"reflect"
	"testing"

	"github.com/tsawler/outliner/detect"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/render"
)

func blankPage() image.Image {
	return image.NewGray(image.Rect(0, 0, 1200, 1600))
}

func stubRenderer(t *testing.T) render.PageRenderer {
	t.Helper()
	return render.RendererFunc(func(ctx context.Context, pdfPath string, page int, dpi float64) (image.Image, error) {
		return blankPage(), nil
	})
}

// fixedDetector serves a canned element stream keyed by page number.
type fixedDetector struct {
	pages map[int][]model.LayoutElement
}

func (d fixedDetector) Detect(ctx context.Context, img image.Image, page int) ([]model.LayoutElement, error) {
	return d.pages[page], nil
}

func testPipeline(t *testing.T, d detect.Detector, pages int) *Pipeline {
	t.Helper()
	p := New(d, stubRenderer(t))
	p.pageCount = func(path string) (int, error) { return pages, nil }
	return p
}

func TestPipelineOutline(t *testing.T) {
	detector := fixedDetector{pages: map[int][]model.LayoutElement{
		1: {
			model.NewLayoutElement(model.LabelDocTitle, "A Study of Things",
				model.BBox{X1: 100, Y1: 80, X2: 900, Y2: 130}, 0.98, 1),
			model.NewLayoutElement(model.LabelParagraphTitle, "1. Introduction",
				model.BBox{X1: 100, Y1: 400, X2: 500, Y2: 424}, 0.95, 1),
			model.NewLayoutElement(model.LabelText, "Body copy that must not appear.",
				model.BBox{X1: 100, Y1: 440, X2: 900, Y2: 700}, 0.99, 1),
		},
		2: {
			model.NewLayoutElement(model.LabelParagraphTitle, "1.1 Motivation",
				model.BBox{X1: 100, Y1: 120, X2: 420, Y2: 136}, 0.92, 2),
			model.NewLayoutElement(model.LabelParagraphTitle, "Low confidence noise",
				model.BBox{X1: 100, Y1: 300, X2: 420, Y2: 320}, 0.30, 2),
		},
	}}

	p := testPipeline(t, detector, 2)
	outline, err := p.Outline(context.Background(), "study.pdf")
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	if outline.Title != "A Study of Things" {
		t.Errorf("Title = %q, want %q", outline.Title, "A Study of Things")
	}

	want := []model.OutlineEntry{
		{Level: "H1", Text: "1. Introduction", Page: 1},
		{Level: "H2", Text: "1.1 Motivation", Page: 2},
	}
	if !reflect.DeepEqual(outline.Outline, want) {
		t.Errorf("Outline = %+v, want %+v", outline.Outline, want)
	}
}

func TestPipelineOutlineMissingBindings(t *testing.T) {
	p := New(nil, stubRenderer(t))
	if _, err := p.Outline(context.Background(), "x.pdf"); !errors.Is(err, ErrNoDetector) {
		t.Errorf("Outline() error = %v, want ErrNoDetector", err)
	}

	p = New(fixedDetector{}, nil)
	if _, err := p.Outline(context.Background(), "x.pdf"); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("Outline() error = %v, want ErrNoRenderer", err)
	}
}

func TestPipelineOutlineDetectError(t *testing.T) {
	boom := errors.New("model crashed")
	detector := detect.DetectorFunc(func(ctx context.Context, img image.Image, page int) ([]model.LayoutElement, error) {
		return nil, boom
	})

	p := testPipeline(t, detector, 1)
	if _, err := p.Outline(context.Background(), "x.pdf"); !errors.Is(err, boom) {
		t.Errorf("Outline() error = %v, want wrapped %v", err, boom)
	}
}

func TestPipelineOutlineContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := testPipeline(t, fixedDetector{}, 3)
	if _, err := p.Outline(ctx, "x.pdf"); !errors.Is(err, context.Canceled) {
		t.Errorf("Outline() error = %v, want context.Canceled", err)
	}
}

// fakeRecognizer records which boxes it was asked about.
type fakeRecognizer struct {
	text  string
	err   error
	boxes []model.BBox
}

func (r *fakeRecognizer) RecognizeRegion(img image.Image, bbox model.BBox) (string, error) {
	r.boxes = append(r.boxes, bbox)
	return r.text, r.err
}

func TestPipelineOCRFillsEmptyText(t *testing.T) {
	emptyBox := model.BBox{X1: 100, Y1: 400, X2: 500, Y2: 424}
	detector := fixedDetector{pages: map[int][]model.LayoutElement{
		1: {
			model.NewLayoutElement(model.LabelParagraphTitle, "Already has text",
				model.BBox{X1: 100, Y1: 120, X2: 500, Y2: 144}, 0.95, 1),
			model.NewLayoutElement(model.LabelParagraphTitle, "",
				emptyBox, 0.95, 1),
		},
	}}

	rec := &fakeRecognizer{text: "Recovered Heading"}
	p := testPipeline(t, detector, 1).WithOCR(rec)

	outline, err := p.Outline(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	if len(rec.boxes) != 1 || rec.boxes[0] != emptyBox {
		t.Fatalf("recognizer called with boxes %v, want just %v", rec.boxes, emptyBox)
	}

	found := false
	for _, entry := range outline.Outline {
		if entry.Text == "Recovered Heading" {
			found = true
		}
	}
	if !found {
		t.Errorf("outline %+v missing OCR-recovered heading", outline.Outline)
	}
}

func TestPipelineOCRFailureDegrades(t *testing.T) {
	detector := fixedDetector{pages: map[int][]model.LayoutElement{
		1: {
			model.NewLayoutElement(model.LabelParagraphTitle, "",
				model.BBox{X1: 100, Y1: 400, X2: 500, Y2: 424}, 0.95, 1),
			model.NewLayoutElement(model.LabelParagraphTitle, "Kept Heading",
				model.BBox{X1: 100, Y1: 500, X2: 500, Y2: 524}, 0.95, 1),
		},
	}}

	rec := &fakeRecognizer{err: errors.New("tesseract unavailable")}
	p := testPipeline(t, detector, 1).WithOCR(rec)

	outline, err := p.Outline(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Outline() error = %v, want degraded success", err)
	}

	if len(outline.Outline) != 1 || outline.Outline[0].Text != "Kept Heading" {
		t.Errorf("Outline = %+v, want only the textful heading", outline.Outline)
	}
}

func TestPipelineFluentSettersDoNotMutateReceiver(t *testing.T) {
	base := testPipeline(t, fixedDetector{}, 1)
	tuned := base.DPI(300).Confidence(0.8)

	if base.options.dpi != render.DefaultDPI || base.options.confidence != 0.5 {
		t.Errorf("base options mutated: %+v", base.options)
	}
	if tuned.options.dpi != 300 || tuned.options.confidence != 0.8 {
		t.Errorf("tuned options = %+v, want dpi=300 confidence=0.8", tuned.options)
	}
}

func TestPipelineProcessMatchesOutline(t *testing.T) {
	detector := fixedDetector{pages: map[int][]model.LayoutElement{
		1: {
			model.NewLayoutElement(model.LabelParagraphTitle, "Chapter One",
				model.BBox{X1: 100, Y1: 400, X2: 500, Y2: 424}, 0.95, 1),
		},
	}}

	p := testPipeline(t, detector, 1)
	fromOutline, err := p.Outline(context.Background(), "a.pdf")
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	fromProcess, err := p.Process(context.Background(), "a.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !reflect.DeepEqual(fromOutline, fromProcess) {
		t.Errorf("Process() = %+v, Outline() = %+v, want identical", fromProcess, fromOutline)
	}
}
