// Package outliner extracts structured outlines from PDF documents: a
// document title plus an ordered list of headings tagged H1, H2 or H3.
//
// The heavy lifting (rasterizing pages, running a neural layout
// detection model, recognizing text) is delegated to collaborators
// supplied by the caller; outliner contributes the classification and
// hierarchy-consistency engine that turns their detected regions into a
// coherent outline.
//
// Basic usage with collaborator bindings:
//
//	pipeline := outliner.New(detector, renderer).WithOCR(ocrClient)
//	outline, err := pipeline.Outline(ctx, "document.pdf")
//	if err != nil {
//	    // handle error
//	}
//
// Callers that already hold a detected element stream can skip the
// collaborators entirely:
//
//	outline := outliner.FromElements(elements)
//
// The result marshals to the stable JSON wire shape:
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
package outliner

import (
	"github.com/tsawler/outliner/hierarchy"
	"github.com/tsawler/outliner/model"
)

// FromElements runs outline extraction over an already-detected element
// stream using the default engine configuration. It is a pure function:
// deterministic, side-effect free and safe for concurrent callers.
func FromElements(elements []model.LayoutElement) model.Outline {
	return hierarchy.NewEngine().ExtractOutline(elements)
}

// FromElementsWithConfig is FromElements with a custom engine
// configuration.
func FromElementsWithConfig(elements []model.LayoutElement, cfg hierarchy.Config) model.Outline {
	return hierarchy.NewEngineWithConfig(cfg).ExtractOutline(elements)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(pipeline.Outline(ctx, "document.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
