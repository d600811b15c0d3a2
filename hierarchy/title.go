package hierarchy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// titleCandidate is a scored first-page region competing to be the
// document title.
type titleCandidate struct {
	text  string
	score int
	yPos  float64
}

// selectTitle picks the document title from the first-page elements.
//
// Each element is scored by label (doc_title outranks title outranks a
// tall paragraph_title outranks very tall plain text), with bonuses for
// sitting near the top of the page and for larger glyph heights. The
// highest score wins; ties go to the topmost region. When nothing scores
// above zero the literal "Document" is returned.
func selectTitle(elements []model.LayoutElement, titleHeightThreshold float64) string {
	var candidates []titleCandidate

	for _, elem := range model.OnPage(elements, 1) {
		text := strings.TrimSpace(elem.Text)
		if text == "" || utf8.RuneCountInString(text) < 3 {
			continue
		}

		score := 0
		switch {
		case elem.Label == model.LabelDocTitle:
			score += 10
		case elem.Label == model.LabelTitle:
			score += 8
		case elem.Label == model.LabelParagraphTitle && elem.Height > titleHeightThreshold:
			score += 6
		case elem.Label == model.LabelText && elem.Height > titleHeightThreshold*1.5:
			score += 4
		}

		// Regions near the top of the page are more likely titles
		if elem.CenterY < 200 {
			score += 3
		} else if elem.CenterY < 400 {
			score += 1
		}

		if elem.Height > 25 {
			score += 2
		} else if elem.Height > 20 {
			score += 1
		}

		if score > 0 {
			candidates = append(candidates, titleCandidate{
				text:  text,
				score: score,
				yPos:  elem.CenterY,
			})
		}
	}

	if len(candidates) == 0 {
		return model.DefaultTitle
	}

	// Highest score first, topmost region breaking ties
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].yPos < candidates[j].yPos
	})

	return candidates[0].text
}
