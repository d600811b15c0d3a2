package hierarchy

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// HeadingCandidate is a layout element retained as a potential section
// heading, pending level assignment. Candidates are owned by a single
// ExtractOutline invocation and mutated in place as classification
// proceeds.
type HeadingCandidate struct {
	Text      string
	Level     Level
	Page      int
	BBox      model.BBox
	Height    float64
	Score     float64
	PositionY float64
	Label     string
}

// filterCandidates narrows the element stream to heading candidates.
//
// Only paragraph_title and title regions with non-empty text of at most
// maxHeadingTextLen characters qualify. A first-page region that
// structurally looks like the already-selected document title (near the
// top, taller than the title threshold) is excluded so the title never
// reappears as a heading.
func filterCandidates(elements []model.LayoutElement, titleHeightThreshold float64) []HeadingCandidate {
	var candidates []HeadingCandidate

	for _, elem := range elements {
		text := strings.TrimSpace(elem.Text)
		if text == "" || utf8.RuneCountInString(text) > maxHeadingTextLen {
			continue
		}

		if elem.Label != model.LabelParagraphTitle && elem.Label != model.LabelTitle {
			continue
		}

		if elem.Page == 1 && elem.CenterY < 300 && elem.Height > titleHeightThreshold {
			continue
		}

		candidates = append(candidates, HeadingCandidate{
			Text:      text,
			Level:     LevelUnassigned,
			Page:      elem.Page,
			BBox:      elem.BBox,
			Height:    elem.Height,
			Score:     elem.Score,
			PositionY: elem.CenterY,
			Label:     elem.Label,
		})
	}

	return candidates
}
