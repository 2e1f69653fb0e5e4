package modnames

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	data := []byte(`{"0": "Arithmetic Foundations", "3": "Fractions"}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	lookup := FileLookup(path)

	name, err := lookup(0)
	if err != nil {
		t.Fatalf("lookup 0: %v", err)
	}
	if name != "Arithmetic Foundations" {
		t.Errorf("name = %q, want Arithmetic Foundations", name)
	}

	// Unmapped bucket resolves to empty, not an error.
	name, err = lookup(7)
	if err != nil {
		t.Fatalf("lookup 7: %v", err)
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
}

func TestFileLookupMissingFile(t *testing.T) {
	lookup := FileLookup(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := lookup(0); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileLookupBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	lookup := FileLookup(path)
	if _, err := lookup(0); err == nil {
		t.Fatal("expected error for malformed document")
	}
}
