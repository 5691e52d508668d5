package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/journal-press/internal/store"
)

// NotebooksHandler handles notebook browsing endpoints
type NotebooksHandler struct {
	store *store.Store
}

// NewNotebooksHandler creates a new notebooks handler
func NewNotebooksHandler(st *store.Store) *NotebooksHandler {
	return &NotebooksHandler{store: st}
}

// notebookSummary is the list representation of a notebook.
type notebookSummary struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	EntryCount int    `json:"entry_count"`
}

// List returns all notebooks under the configured root
func (h *NotebooksHandler) List(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.store.ListNotebooks()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "listing notebooks: "+err.Error())
		return
	}

	summaries := make([]notebookSummary, 0, len(slugs))
	for _, slug := range slugs {
		nb, err := h.store.LoadNotebook(slug)
		if err != nil {
			// Skip notebooks that fail to parse, the rest remain browsable.
			continue
		}
		summaries = append(summaries, notebookSummary{
			Slug:       nb.Slug,
			Name:       nb.Name,
			EntryCount: len(nb.Logs),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"notebooks": summaries})
}

// Get returns a single notebook with all its entries
func (h *NotebooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "missing notebook slug")
		return
	}

	nb, err := h.store.LoadNotebook(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "notebook not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "loading notebook: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, nb)
}
