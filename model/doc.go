// Package model provides the shared data types for document outline
// extraction.
//
// This package defines the value types that flow between the layout
// detection collaborators and the hierarchy engine. All detection and
// classification operations ultimately consume or produce these types,
// making them the primary API for working with extracted structure.
//
// # Layout Elements
//
// The [LayoutElement] type represents one detected visual region on a
// page: a class label, a bounding box in page-pixel coordinates, a
// detector confidence score, and the text extracted from the region.
// Elements are plain values; derived geometry (height, width, centroid)
// is computed once at construction via [NewLayoutElement].
//
// # Outlines
//
// The [Outline] type is the extraction result: a document title plus an
// ordered list of [OutlineEntry] values tagged H1, H2, or H3. Its JSON
// encoding is a stable wire contract:
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
//
// # Geometry
//
// [BBox] is a pixel-space bounding box with derived accessors for width,
// height, area, aspect ratio, and centroid. [Point] is a 2D point.
package model
