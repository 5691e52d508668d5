package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/journal-press/internal/store"
)

func TestNotebooksList(t *testing.T) {
	h := NewNotebooksHandler(testStore(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notebooks", nil))

	assertStatusCode(t, rec, http.StatusOK)

	var body struct {
		Notebooks []struct {
			Slug       string `json:"slug"`
			Name       string `json:"name"`
			EntryCount int    `json:"entry_count"`
		} `json:"notebooks"`
	}
	parseJSONResponse(t, rec, &body)

	if len(body.Notebooks) != 1 {
		t.Fatalf("expected 1 notebook, got %d", len(body.Notebooks))
	}
	nb := body.Notebooks[0]
	if nb.Slug != "test-journal" || nb.Name != "Test Journal" || nb.EntryCount != 2 {
		t.Errorf("unexpected notebook summary: %+v", nb)
	}
}

func TestNotebooksList_SkipsBrokenNotebook(t *testing.T) {
	st := testStore(t)
	seedNotebook(t, st.Root(), "broken", `{not json`)
	h := NewNotebooksHandler(st)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notebooks", nil))

	assertStatusCode(t, rec, http.StatusOK)
	var body struct {
		Notebooks []map[string]any `json:"notebooks"`
	}
	parseJSONResponse(t, rec, &body)
	if len(body.Notebooks) != 1 {
		t.Errorf("broken notebook should be skipped, got %d notebooks", len(body.Notebooks))
	}
}

func TestNotebooksGet(t *testing.T) {
	h := NewNotebooksHandler(testStore(t))

	req := requestWithChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/notebooks/test-journal", nil),
		map[string]string{"slug": "test-journal"},
	)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assertStatusCode(t, rec, http.StatusOK)
	var nb store.Notebook
	parseJSONResponse(t, rec, &nb)
	if nb.Name != "Test Journal" || len(nb.Logs) != 2 {
		t.Errorf("unexpected notebook: %+v", nb)
	}
}

func TestNotebooksGet_NotFound(t *testing.T) {
	h := NewNotebooksHandler(testStore(t))

	req := requestWithChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/notebooks/nope", nil),
		map[string]string{"slug": "nope"},
	)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assertStatusCode(t, rec, http.StatusNotFound)
	assertJSONError(t, rec, "notebook not found")
}

func TestNotebooksGet_MissingSlug(t *testing.T) {
	h := NewNotebooksHandler(testStore(t))

	req := requestWithChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/notebooks/", nil),
		map[string]string{},
	)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assertStatusCode(t, rec, http.StatusBadRequest)
}
