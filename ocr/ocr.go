//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for extracting text from detected layout regions.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/outliner/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeRegion performs OCR on one detected region of a rendered
// page. The region's bounding box is cropped from the page image,
// clamped to the image bounds and upscaled when very small, then run
// through a chain of page segmentation modes (uniform block, single
// line, raw line), returning the first non-empty result.
func (c *Client) RecognizeRegion(img image.Image, bbox model.BBox) (string, error) {
	crop, err := cropRegion(img, bbox)
	if err != nil {
		return "", err
	}

	data, err := encodePNG(crop)
	if err != nil {
		return "", fmt.Errorf("failed to encode region: %w", err)
	}

	modes := []gosseract.PageSegMode{
		gosseract.PSM_SINGLE_BLOCK,
		gosseract.PSM_SINGLE_LINE,
		gosseract.PSM_RAW_LINE,
	}

	var lastErr error
	for _, mode := range modes {
		if err := c.client.SetPageSegMode(mode); err != nil {
			return "", fmt.Errorf("failed to set segmentation mode: %w", err)
		}
		text, err := c.RecognizeImage(data)
		if err != nil {
			lastErr = err
			continue
		}
		if text != "" {
			return text, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
