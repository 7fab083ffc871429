package kb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != DefaultCatalog().Len() {
		t.Errorf("empty path should load the default catalog")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `topics:
  - name: WIDGET
    question: "What does the widget tracker do?"
    answer: "It tracks widgets end to end."
    variations:
      - "Tell me about the widget tracker"
    facets:
      - "track widgets"
      - "widget tracking"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("loaded %d topics, want 1", c.Len())
	}

	answer, ok := c.AnswerFor("Tell me about the widget tracker")
	if !ok || answer != "It tracks widgets end to end." {
		t.Errorf("variation lookup failed: %q, %v", answer, ok)
	}

	entry := c.Entries()[0]
	if len(entry.Facets) != 2 || entry.Facets[0] != "track widgets" {
		t.Errorf("facets not loaded: %v", entry.Facets)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("topics: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoad_InvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := `topics:
  - name: BROKEN
    question: "A question?"
    answer: ""
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for an empty answer")
	}
}
