package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const notebookFile = "notebook.json"

var (
	// ErrNotFound indicates the requested notebook does not exist under the root.
	ErrNotFound = errors.New("notebook not found")
	// ErrInvalidNotebook indicates the notebook file is malformed.
	ErrInvalidNotebook = errors.New("invalid notebook")
)

// Store reads notebooks from a root directory.
type Store struct {
	root string
}

// New creates a store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// ListNotebooks returns the slugs of all notebooks under the root, sorted.
func (s *Store) ListNotebooks() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read notebooks root: %w", err)
	}

	var slugs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, e.Name(), notebookFile)); err == nil {
			slugs = append(slugs, e.Name())
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// LoadNotebook reads and validates a notebook by slug.
func (s *Store) LoadNotebook(slug string) (*Notebook, error) {
	if err := checkPathComponent(slug); err != nil {
		return nil, err
	}

	path := filepath.Join(s.root, slug, notebookFile)
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("read notebook %s: %w", slug, err)
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidNotebook, slug, err)
	}
	if err := validateLogs(nb.Logs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidNotebook, slug, err)
	}

	nb.Slug = slug
	return &nb, nil
}

// AttachmentPath resolves the absolute path of an attachment file and checks
// it exists. The filename must be a bare name; traversal is rejected.
func (s *Store) AttachmentPath(slug, filename string) (string, error) {
	if err := checkPathComponent(slug); err != nil {
		return "", err
	}
	if err := checkPathComponent(filename); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, slug, "attachments", filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("attachment %s: %w", filename, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve attachment path: %w", err)
	}
	return abs, nil
}

// validateLogs checks the ordering contract: ids strictly ascending, which
// also guarantees uniqueness.
func validateLogs(logs []Log) error {
	for i, l := range logs {
		if i > 0 && l.ID <= logs[i-1].ID {
			return fmt.Errorf("log ids must be strictly ascending: id %d at index %d follows id %d", l.ID, i, logs[i-1].ID)
		}
	}
	return nil
}

// checkPathComponent rejects values that could escape the notebook directory.
func checkPathComponent(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid path component %q", ErrInvalidNotebook, name)
	}
	return nil
}
