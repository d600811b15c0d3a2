package hierarchy

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func makeElement(label, text string, page int, centerY, height float64) model.LayoutElement {
	y1 := centerY - height/2
	return model.NewLayoutElement(label, text, model.NewBBox(100, y1, 500, y1+height), 0.9, page)
}

func TestSelectTitlePrefersDocTitle(t *testing.T) {
	elements := []model.LayoutElement{
		makeElement(model.LabelParagraphTitle, "1. Introduction", 1, 500, 22),
		makeElement(model.LabelDocTitle, "Annual Report 2024", 1, 150, 30),
		makeElement(model.LabelTitle, "A Subtitle", 1, 220, 24),
	}

	if got := selectTitle(elements, 20); got != "Annual Report 2024" {
		t.Errorf("selectTitle = %q, want %q", got, "Annual Report 2024")
	}
}

func TestSelectTitleTieBreaksTopmost(t *testing.T) {
	// Two doc_title regions with identical scores; the one nearer the
	// top of the page wins.
	elements := []model.LayoutElement{
		makeElement(model.LabelDocTitle, "Lower Title", 1, 180, 30),
		makeElement(model.LabelDocTitle, "Upper Title", 1, 120, 30),
	}

	if got := selectTitle(elements, 20); got != "Upper Title" {
		t.Errorf("selectTitle = %q, want %q", got, "Upper Title")
	}
}

func TestSelectTitleLabelScoring(t *testing.T) {
	tests := []struct {
		name     string
		elements []model.LayoutElement
		want     string
	}{
		{
			name: "tall paragraph_title beats plain text",
			elements: []model.LayoutElement{
				makeElement(model.LabelParagraphTitle, "Report Heading", 1, 150, 24),
				makeElement(model.LabelText, "Some tall text", 1, 150, 35),
			},
			want: "Report Heading",
		},
		{
			name: "short paragraph_title scores no label bonus",
			elements: []model.LayoutElement{
				makeElement(model.LabelParagraphTitle, "Small Heading", 1, 150, 15),
				makeElement(model.LabelTitle, "The Title", 1, 350, 15),
			},
			want: "The Title",
		},
		{
			name: "very tall plain text qualifies",
			elements: []model.LayoutElement{
				makeElement(model.LabelText, "GIANT BANNER TEXT", 1, 150, 40),
			},
			want: "GIANT BANNER TEXT",
		},
	}

	for _, tt := range tests {
		if got := selectTitle(tt.elements, 20); got != tt.want {
			t.Errorf("%s: selectTitle = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSelectTitleIgnoresLaterPages(t *testing.T) {
	elements := []model.LayoutElement{
		makeElement(model.LabelDocTitle, "Not On Page One", 2, 100, 30),
	}

	if got := selectTitle(elements, 20); got != model.DefaultTitle {
		t.Errorf("selectTitle = %q, want %q", got, model.DefaultTitle)
	}
}

func TestSelectTitleSkipsDegenerateText(t *testing.T) {
	elements := []model.LayoutElement{
		makeElement(model.LabelDocTitle, "", 1, 100, 30),
		makeElement(model.LabelDocTitle, "ab", 1, 100, 30), // under 3 chars
		makeElement(model.LabelDocTitle, "   ", 1, 100, 30),
	}

	if got := selectTitle(elements, 20); got != model.DefaultTitle {
		t.Errorf("selectTitle = %q, want %q", got, model.DefaultTitle)
	}
}

func TestSelectTitleMinLengthCountsRunes(t *testing.T) {
	// OCR output is not always ASCII; the 3-character minimum counts
	// runes, not bytes. "éé" is two characters even at four bytes.
	tooShort := []model.LayoutElement{
		makeElement(model.LabelDocTitle, "éé", 1, 100, 30),
	}
	if got := selectTitle(tooShort, 20); got != model.DefaultTitle {
		t.Errorf("selectTitle = %q, want %q", got, model.DefaultTitle)
	}

	longEnough := []model.LayoutElement{
		makeElement(model.LabelDocTitle, "ééé", 1, 100, 30),
	}
	if got := selectTitle(longEnough, 20); got != "ééé" {
		t.Errorf("selectTitle = %q, want %q", got, "ééé")
	}
}

func TestSelectTitleFallback(t *testing.T) {
	// A label outside the scoring set earns no label bonus, and low on
	// the page with a small height it scores zero overall.
	elements := []model.LayoutElement{
		makeElement(model.LabelFigureTitle, "Figure 1: Results", 1, 600, 12),
	}

	if got := selectTitle(elements, 20); got != model.DefaultTitle {
		t.Errorf("selectTitle = %q, want %q", got, model.DefaultTitle)
	}

	if got := selectTitle(nil, 20); got != model.DefaultTitle {
		t.Errorf("selectTitle(nil) = %q, want %q", got, model.DefaultTitle)
	}
}
