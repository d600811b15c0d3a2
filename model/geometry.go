package model

import "math"

// Point represents a 2D point in page-pixel coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in page-pixel coordinates at the
// rendering resolution. The origin is the top-left corner of the page,
// so Y1 <= Y2 and smaller Y values are closer to the top of the page.
type BBox struct {
	X1 float64 // Left
	Y1 float64 // Top
	X2 float64 // Right
	Y2 float64 // Bottom
}

// NewBBox creates a bounding box from corner coordinates
func NewBBox(x1, y1, x2, y2 float64) BBox {
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Area returns the area of the box in square pixels
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// AspectRatio returns width divided by height, or 0 for degenerate boxes
func (b BBox) AspectRatio() float64 {
	h := b.Height()
	if h <= 0 {
		return 0
	}
	return b.Width() / h
}

// Center returns the centroid of the box
func (b BBox) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X1 && p.X <= b.X2 &&
		p.Y >= b.Y1 && p.Y <= b.Y2
}

// Intersects checks if two bounding boxes overlap
func (b BBox) Intersects(other BBox) bool {
	return !(b.X2 < other.X1 ||
		b.X1 > other.X2 ||
		b.Y2 < other.Y1 ||
		b.Y1 > other.Y2)
}
