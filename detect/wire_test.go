package detect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

const sampleDump = `[
  {"label": "doc_title", "text": "Annual Report", "bbox": [100, 80, 900, 130], "score": 0.97, "page": 1},
  {"label": "paragraph_title", "text": "1. Overview", "bbox": [100, 400, 420, 424], "score": 0.91, "page": 1},
  {"label": "text", "text": "Body.", "bbox": [100, 440, 900, 900], "score": 0.99, "page": 1}
]`

func TestReadElements(t *testing.T) {
	elements, err := ReadElements(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("ReadElements failed: %v", err)
	}
	if len(elements) != 3 {
		t.Fatalf("ReadElements returned %d elements, want 3", len(elements))
	}

	first := elements[0]
	if first.Label != model.LabelDocTitle {
		t.Errorf("Label = %q, want %q", first.Label, model.LabelDocTitle)
	}
	if first.Text != "Annual Report" {
		t.Errorf("Text = %q, want %q", first.Text, "Annual Report")
	}
	if first.Page != 1 {
		t.Errorf("Page = %d, want 1", first.Page)
	}

	// Derived geometry must be populated from the flat bbox
	if first.Height != 50 {
		t.Errorf("Height = %v, want 50", first.Height)
	}
	if first.CenterY != 105 {
		t.Errorf("CenterY = %v, want 105", first.CenterY)
	}
}

func TestReadElementsMalformed(t *testing.T) {
	if _, err := ReadElements(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("ReadElements accepted a non-array dump")
	}
}

func TestLoadElements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.layout.json")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	elements, err := LoadElements(path)
	if err != nil {
		t.Fatalf("LoadElements failed: %v", err)
	}
	if len(elements) != 3 {
		t.Errorf("LoadElements returned %d elements, want 3", len(elements))
	}

	if _, err := LoadElements(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadElements succeeded on a missing file")
	}
}
