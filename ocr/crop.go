package ocr

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"github.com/tsawler/outliner/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrEmptyRegion is returned when a bounding box does not cover any
// pixels of the page image.
var ErrEmptyRegion = errors.New("region does not intersect page image")

// minRegionHeight is the crop height below which the region is upscaled
// before recognition; Tesseract degrades sharply on very small glyphs.
const minRegionHeight = 32

// cropRegion extracts the pixels covered by bbox from a rendered page
// image. Coordinates are clamped to the image bounds; regions shorter
// than minRegionHeight are upscaled with bilinear interpolation.
func cropRegion(img image.Image, bbox model.BBox) (image.Image, error) {
	bounds := img.Bounds()

	x1 := clampInt(int(math.Floor(bbox.X1)), bounds.Min.X, bounds.Max.X)
	y1 := clampInt(int(math.Floor(bbox.Y1)), bounds.Min.Y, bounds.Max.Y)
	x2 := clampInt(int(math.Ceil(bbox.X2)), bounds.Min.X, bounds.Max.X)
	y2 := clampInt(int(math.Ceil(bbox.Y2)), bounds.Min.Y, bounds.Max.Y)

	if x2 <= x1 || y2 <= y1 {
		return nil, ErrEmptyRegion
	}

	rect := image.Rect(x1, y1, x2, y2)
	crop := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(crop, image.Point{}, img, rect, draw.Src, nil)

	if rect.Dy() >= minRegionHeight {
		return crop, nil
	}

	// Preserve aspect ratio while bringing the height up to the minimum
	scale := float64(minRegionHeight) / float64(rect.Dy())
	scaled := image.NewRGBA(image.Rect(0, 0, int(float64(rect.Dx())*scale), minRegionHeight))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), crop, crop.Bounds(), draw.Src, nil)
	return scaled, nil
}

// encodePNG serializes an image for handoff to the OCR engine
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
