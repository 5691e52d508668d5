package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/journal-press/internal/store"
)

func TestNotebookEntries(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "trip")
	if err := os.MkdirAll(filepath.Join(dir, "attachments"), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	notebook := `{
		"name": "Trip",
		"logs": [
			{"id": 1, "date": "Day one", "text": "Arrived.",
			 "attachments": [
				{"type": "image", "filename": "present.png"},
				{"type": "image", "filename": "gone.png"}
			 ]},
			{"id": 3, "title": "Return", "date": "Day two", "text": "Left."}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "notebook.json"), []byte(notebook), 0600); err != nil {
		t.Fatalf("write notebook: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "attachments", "present.png"), []byte("x"), 0600); err != nil {
		t.Fatalf("write attachment: %v", err)
	}

	st := store.New(root)
	nb, err := st.LoadNotebook("trip")
	if err != nil {
		t.Fatalf("LoadNotebook: %v", err)
	}

	entries := NotebookEntries(st, nb)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[1].ID != 3 {
		t.Errorf("entry IDs not preserved: %d, %d", entries[0].ID, entries[1].ID)
	}
	if entries[1].Title != "Return" {
		t.Errorf("entry title not carried over: %q", entries[1].Title)
	}

	atts := entries[0].Attachments
	if len(atts) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(atts))
	}
	if _, err := os.Stat(atts[0].Path); err != nil {
		t.Errorf("resolved attachment path should exist: %v", err)
	}
	// The missing file still gets its expected path so rendering can warn.
	want := filepath.Join(root, "trip", "attachments", "gone.png")
	if atts[1].Path != want {
		t.Errorf("missing attachment path = %q, want %q", atts[1].Path, want)
	}
}
