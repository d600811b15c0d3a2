// Package render defines the page rendering boundary and PDF file
// inspection helpers.
//
// Layout detection operates on raster page images, but rasterization
// itself is an external concern: implementations of [PageRenderer] adapt
// whatever renderer is available (MuPDF bindings, a poppler sidecar, a
// rasterization service) to the pipeline. The helpers in this package
// use pdfcpu to enumerate and sanity-check PDF inputs without
// rasterizing them.
package render

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DefaultDPI is the rendering resolution the classifier thresholds are
// calibrated against. Rendering at a different DPI changes pixel
// heights and with them the size-fallback and title thresholds.
const DefaultDPI = 200

// PageRenderer rasterizes one page of a PDF document at the given DPI.
// Page numbers are 1-indexed.
type PageRenderer interface {
	RenderPage(ctx context.Context, pdfPath string, page int, dpi float64) (image.Image, error)
}

// RendererFunc adapts a function to the PageRenderer interface.
type RendererFunc func(ctx context.Context, pdfPath string, page int, dpi float64) (image.Image, error)

// RenderPage calls f.
func (f RendererFunc) RenderPage(ctx context.Context, pdfPath string, page int, dpi float64) (image.Image, error) {
	return f(ctx, pdfPath, page, dpi)
}

// DocInfo describes a PDF file on disk.
type DocInfo struct {
	Path      string `json:"path" yaml:"path"`
	Pages     int    `json:"pages" yaml:"pages"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Info inspects a PDF file without rasterizing it, returning its page
// count and size.
func Info(path string) (DocInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return DocInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return DocInfo{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	pages, err := api.PageCount(f, nil)
	if err != nil {
		return DocInfo{}, fmt.Errorf("failed to get page count for %s: %w", path, err)
	}

	return DocInfo{
		Path:      path,
		Pages:     pages,
		SizeBytes: stat.Size(),
	}, nil
}

// Validate checks that a file is a structurally sound PDF.
func Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("invalid PDF %s: %w", path, err)
	}
	return nil
}

// ListPDFs returns the PDF files in a directory, sorted by name for a
// stable processing order. Subdirectories are not descended into.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Stem returns the file name without directory or extension, used to
// derive output file names ("report.pdf" -> "report").
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
