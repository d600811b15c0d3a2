package model

// DefaultTitle is used when no element on the first page qualifies as a
// document title.
const DefaultTitle = "Document"

// OutlineEntry is one heading in the extracted outline. Level is the
// string form of the heading level ("H1", "H2" or "H3"); Page is the
// 1-indexed page the heading appears on.
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the result of outline extraction: the document title plus
// the ordered heading list. The JSON encoding of this type is a wire
// contract consumed by downstream tooling and must not change shape.
type Outline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewOutline creates an outline with a non-nil, empty entry list so the
// JSON encoding always contains an "outline" array.
func NewOutline(title string) Outline {
	return Outline{
		Title:   title,
		Outline: []OutlineEntry{},
	}
}
