// Package export orchestrates a notebook export: it walks entries in order,
// drives the layout and page writer, reports progress, honors cancellation,
// and publishes the finished PDF atomically.
package export

import (
	"errors"

	"github.com/kozaktomas/journal-press/internal/layout"
	"github.com/kozaktomas/journal-press/internal/press"
)

var (
	// ErrInvalidInput indicates a malformed request; never retried.
	ErrInvalidInput = errors.New("export: invalid input")
	// ErrCancelled indicates a user-requested abort. Distinct from failure
	// so callers can suppress user-facing alarms.
	ErrCancelled = errors.New("export: cancelled")
	// ErrSinkFailure indicates the output file could not be written or
	// published. Temp artifacts are cleaned up before it surfaces.
	ErrSinkFailure = errors.New("export: sink failure")
)

// Entry is one immutable record handed to the engine: resolved text and
// attachment paths, pre-formatted date. Entries arrive in ascending ID order.
type Entry struct {
	ID          int
	Title       string // optional; empty falls back to "Entry <id>"
	Date        string // display string, never reparsed
	Text        string // paragraphs separated by one or more blank lines
	Attachments []Attachment
}

// Attachment references an image file on disk. Rendering branches on Kind,
// not MimeType.
type Attachment struct {
	Kind     string // only "image" is rendered
	Path     string // resolved absolute path
	MimeType string // informational only
	Name     string
}

// ProgressFunc receives monotonically non-decreasing progress with a final
// 1.0 call only on success. Implementations must not block; the engine
// invokes them inline on the export goroutine.
type ProgressFunc func(fraction float64, message string)

// Request describes one export run. A request is owned by its run: the
// engine never mutates it, and concurrent runs against the same destination
// must be serialized by the caller.
type Request struct {
	Title    string
	Entries  []Entry
	Dest     string          // destination PDF path
	Geometry layout.Geometry // zero value selects letter
	Progress ProgressFunc    // optional
}

// Result is produced only on full success; no partial result ever exists.
type Result struct {
	Path      string
	PageCount int
	// Report carries the placement trace and warnings for inspection.
	Report *press.Report
}
