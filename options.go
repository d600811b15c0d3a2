package outliner

import (
	"github.com/tsawler/outliner/hierarchy"
	"github.com/tsawler/outliner/render"
)

// ExtractOptions holds configuration for the extraction pipeline.
type ExtractOptions struct {
	// Page rendering resolution
	dpi float64

	// Minimum detector confidence for a region to be considered
	confidence float64

	// Hierarchy engine settings
	engineConfig hierarchy.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		dpi:          render.DefaultDPI,
		confidence:   0.5,
		engineConfig: hierarchy.DefaultConfig(),
	}
}

// clone creates a copy of ExtractOptions. The engine config's pattern
// table is immutable, so a shallow copy suffices.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		dpi:          o.dpi,
		confidence:   o.confidence,
		engineConfig: o.engineConfig,
	}
}
