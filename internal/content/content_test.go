package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBuiltinAll(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c, err := LoadBuiltin(name)
			if err != nil {
				t.Fatalf("LoadBuiltin(%q): %v", name, err)
			}
			if c.Name != name {
				t.Errorf("content name = %q, want %q", c.Name, name)
			}
			if len(c.Tips) == 0 {
				t.Error("content has no tips")
			}
			if c.Disclaimer == "" {
				t.Error("content has no disclaimer")
			}
		})
	}
}

func TestLoadBuiltinDefault(t *testing.T) {
	c, err := LoadBuiltin(DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Tips) != 4 {
		t.Fatalf("expected 4 tips, got %d", len(c.Tips))
	}
	if c.Tips[0] != "Payment history is the most important credit factor (~35%)" {
		t.Errorf("unexpected first tip: %q", c.Tips[0])
	}
	if !strings.HasPrefix(c.Disclaimer, "This calculator provides educational estimates") {
		t.Errorf("unexpected disclaimer: %q", c.Disclaimer)
	}
	if strings.HasSuffix(c.Disclaimer, "\n") {
		t.Error("disclaimer should be trimmed")
	}
	if len(c.Notes) != 3 {
		t.Errorf("expected 3 notes, got %d", len(c.Notes))
	}
	if c.Copyright != "© 2026 Credit Impact Estimator" {
		t.Errorf("unexpected copyright: %q", c.Copyright)
	}
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := LoadBuiltin("nonexistent")
	if err == nil {
		t.Error("expected error for unknown content")
	}
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	required := map[string]bool{"default": false, "brief": false}
	for _, n := range names {
		required[n] = true
	}
	for name, found := range required {
		if !found {
			t.Errorf("missing required content: %s", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("title: Custom\ntips:\n  - one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Custom" || len(c.Tips) != 1 {
		t.Errorf("unexpected content: %+v", c)
	}
}

func TestLoadFileMissingTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("tips:\n  - one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for content without a title")
	}
}
