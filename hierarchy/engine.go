package hierarchy

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// Engine classifies detected layout elements into a structured document
// outline. An Engine is immutable after construction and safe for
// concurrent use; each ExtractOutline call owns its own candidate list
// and no state survives the call.
type Engine struct {
	config Config
}

// NewEngine creates an engine with default configuration
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with custom configuration. A
// zero-valued pattern table falls back to the defaults.
func NewEngineWithConfig(config Config) *Engine {
	if config.TitleHeightThreshold == 0 {
		config.TitleHeightThreshold = 20
	}
	if len(config.Patterns.h1)+len(config.Patterns.h2)+len(config.Patterns.h3) == 0 {
		config.Patterns = DefaultPatterns()
	}
	return &Engine{config: config}
}

// ExtractOutline turns a flat stream of detected layout elements into a
// document outline. It is a total function over its input: malformed or
// empty element streams degrade to an outline with the default title and
// no headings rather than an error.
func (e *Engine) ExtractOutline(elements []model.LayoutElement) model.Outline {
	title := selectTitle(elements, e.config.TitleHeightThreshold)

	candidates := filterCandidates(elements, e.config.TitleHeightThreshold)
	for i := range candidates {
		candidates[i].Level = classifyLevel(e.config.Patterns, candidates[i].Text, candidates[i].Height)
	}

	// Document order before refinement so the validator sees headings
	// as a reader would
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Page != candidates[j].Page {
			return candidates[i].Page < candidates[j].Page
		}
		return candidates[i].PositionY < candidates[j].PositionY
	})

	refineByHeight(candidates)

	outline := model.NewOutline(title)
	for _, c := range candidates {
		outline.Outline = append(outline.Outline, model.OutlineEntry{
			Level: c.Level.String(),
			Text:  c.Text,
			Page:  c.Page,
		})
	}

	outline.Outline = ValidateOutline(outline.Outline)
	return outline
}
