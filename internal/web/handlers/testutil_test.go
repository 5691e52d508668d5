package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/store"
)

// testConfig creates a minimal config for testing
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("EXPORT_OUTPUT_DIR", t.TempDir())
	return config.Load()
}

// seedNotebook writes a notebook directory with the given JSON under root
func seedNotebook(t *testing.T, root, slug, body string) {
	t.Helper()
	dir := filepath.Join(root, slug)
	if err := os.MkdirAll(filepath.Join(dir, "attachments"), 0750); err != nil {
		t.Fatalf("mkdir notebook: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notebook.json"), []byte(body), 0600); err != nil {
		t.Fatalf("write notebook.json: %v", err)
	}
}

// seedAttachmentPNG writes a PNG into the notebook's attachments directory
func seedAttachmentPNG(t *testing.T, root, slug, name string, w, h int) {
	t.Helper()
	path := filepath.Join(root, slug, "attachments", name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create attachment: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode attachment: %v", err)
	}
}

// testStore creates a store with one seeded notebook and returns it
func testStore(t *testing.T) *store.Store {
	t.Helper()
	root := t.TempDir()
	seedNotebook(t, root, "test-journal", fmt.Sprintf(`{
		"name": "Test Journal",
		"logs": [
			{"id": 1, "date": "January 1", "text": "First entry."},
			{"id": 2, "date": "January 2", "text": "Second entry.",
			 "attachments": [{"type": "image", "filename": "pic.png", "mime_type": "image/png"}]}
		]
	}`))
	seedAttachmentPNG(t, root, "test-journal", "pic.png", 320, 240)
	return store.New(root)
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
