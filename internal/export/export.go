package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kozaktomas/journal-press/internal/imagemeta"
	"github.com/kozaktomas/journal-press/internal/layout"
	"github.com/kozaktomas/journal-press/internal/press"
)

// Vertical rhythm in points.
const (
	titleTopSpacePt    = 36.0 // above the document title
	titleBottomSpacePt = 22.0 // below the document title
	titleBadgeGapPt    = 4.0  // entry title to date badge
	dateGapPt          = 15.0 // date badge to body
	paragraphGapPt     = 8.0  // between paragraphs
	imageGapPt         = 10.0 // above each image
	dividerGapPt       = 25.0 // around the entry divider
)

// lowResDPI flags images whose effective resolution at placed size falls
// below print quality.
const lowResDPI = 150.0

// Run executes one export: Preparing, Emitting per entry, Finalizing. The
// output appears at req.Dest only on full success; any other outcome removes
// the temporary file and leaves the destination untouched. Cancellation is
// polled before the first write and at each entry boundary.
func Run(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	geo := req.Geometry
	if geo.PageW == 0 {
		geo = layout.Letter()
	}
	title := req.Title
	if title == "" {
		title = "Journal"
	}

	if dir := filepath.Dir(req.Dest); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("%w: create output directory: %v", ErrSinkFailure, err)
		}
	}

	tmpPath := req.Dest + ".tmp"
	tmp, err := os.Create(tmpPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: open temporary sink: %v", ErrSinkFailure, err)
	}
	// Every non-success path from here destroys the temporary sink.

	if ctx.Err() != nil {
		discard(tmp, tmpPath)
		return nil, fmt.Errorf("%w: before first entry", ErrCancelled)
	}

	w := press.NewWriter(geo, title)
	w.StartPage()
	renderDocumentTitle(w, title)

	total := len(req.Entries)
	for i, e := range req.Entries {
		if ctx.Err() != nil {
			discard(tmp, tmpPath)
			return nil, fmt.Errorf("%w: at entry %d of %d", ErrCancelled, i+1, total)
		}
		renderEntry(w, e, i == total-1)
		emitProgress(req.Progress, float64(i+1)/float64(total),
			fmt.Sprintf("Exported entry %d of %d", i+1, total))
	}

	pages, report, err := w.Finalize(tmp)
	if err != nil {
		discard(tmp, tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: close temporary sink: %v", ErrSinkFailure, err)
	}

	// Sole publication point: readers never observe a partial file.
	if err := os.Rename(tmpPath, req.Dest); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: publish output: %v", ErrSinkFailure, err)
	}

	emitProgress(req.Progress, 1.0, "Export complete")
	return &Result{Path: req.Dest, PageCount: pages, Report: report}, nil
}

// validate fails fast on requests the engine cannot process.
func validate(req Request) error {
	if req.Dest == "" {
		return fmt.Errorf("%w: missing destination path", ErrInvalidInput)
	}
	for i, e := range req.Entries {
		if i > 0 && e.ID <= req.Entries[i-1].ID {
			return fmt.Errorf("%w: entry ids must be strictly ascending (id %d at index %d)",
				ErrInvalidInput, e.ID, i)
		}
	}
	return nil
}

func discard(tmp *os.File, path string) {
	_ = tmp.Close()
	_ = os.Remove(path)
}

func emitProgress(fn ProgressFunc, fraction float64, message string) {
	if fn != nil {
		fn(fraction, message)
	}
}

// renderDocumentTitle places the large title block on the first page.
func renderDocumentTitle(w *press.Writer, title string) {
	geo := w.Geometry()
	w.Space(titleTopSpacePt)
	for _, line := range layout.Wrap(title, geo.ContentWidth(), w.Measure(press.StyleTitle)) {
		writeLineChecked(w, line, press.StyleTitle)
	}
	w.Space(titleBottomSpacePt)
}

// renderEntry emits one entry: title, date badge, wrapped paragraphs, then
// resolvable image attachments, and a divider unless it is the last entry.
func renderEntry(w *press.Writer, e Entry, last bool) {
	w.SetEntry(e.ID)
	defer w.SetEntry(0)

	geo := w.Geometry()
	cw := geo.ContentWidth()

	title := e.Title
	if title == "" {
		title = fmt.Sprintf("Entry %d", e.ID)
	}
	date := e.Date
	if date == "" {
		date = "No date"
	}

	// The entry title is indivisible and kept with its date badge so a
	// heading never strands at a page bottom.
	titleLines := layout.Wrap(title, cw, w.Measure(press.StyleEntryTitle))
	headHeight := float64(len(titleLines))*press.StyleEntryTitle.Leading +
		titleBadgeGapPt + press.DateBadgeHeight()
	w.EnsureRoom(headHeight)
	for _, line := range titleLines {
		writeLineChecked(w, line, press.StyleEntryTitle)
	}
	w.Space(titleBadgeGapPt)
	w.WriteDateBadge(date)
	w.Space(dateGapPt)

	renderBody(w, e.Text, cw)
	renderAttachments(w, e)

	if !last {
		w.Space(dividerGapPt)
		w.EnsureRoom(1)
		w.WriteDivider()
		w.Space(dividerGapPt)
	}
}

// renderBody wraps each paragraph independently and places lines one at a
// time; a wrapped line is never split across a page break.
func renderBody(w *press.Writer, text string, availWidth float64) {
	measure := w.Measure(press.StyleBody)
	for gi, paragraph := range layout.Paragraphs(text) {
		if gi > 0 {
			w.Space(paragraphGapPt)
		}
		for _, line := range layout.Wrap(paragraph, availWidth, measure) {
			w.EnsureRoom(press.StyleBody.Leading)
			writeLineChecked(w, line, press.StyleBody)
		}
	}
}

// renderAttachments places each resolvable image; a bad attachment is logged
// and skipped without aborting the entry or the export.
func renderAttachments(w *press.Writer, e Entry) {
	geo := w.Geometry()
	for _, a := range e.Attachments {
		if a.Kind != "image" {
			w.Warnf("entry %d: skipping attachment %s: unsupported kind %q", e.ID, a.Name, a.Kind)
			continue
		}

		meta, err := imagemeta.Resolve(a.Path)
		if err != nil {
			log.Printf("WARNING: entry %d: skipping attachment %s: %v", e.ID, filepath.Base(a.Path), err)
			w.Warnf("entry %d: attachment %s unavailable", e.ID, filepath.Base(a.Path))
			continue
		}
		if !meta.Embeddable() {
			log.Printf("WARNING: entry %d: skipping attachment %s: %s not embeddable", e.ID, filepath.Base(a.Path), meta.Format)
			w.Warnf("entry %d: attachment %s format %s not embeddable", e.ID, filepath.Base(a.Path), meta.Format)
			continue
		}

		iw, ih := layout.ScaleImage(meta.Width, meta.Height, geo.ContentWidth(), geo.MaxImageH)
		if iw <= 0 {
			continue
		}

		// The break, if needed, happens before the image; an image is
		// never split across pages.
		w.Space(imageGapPt)
		w.EnsureRoom(ih)
		w.WriteImage(a.Path, meta.Format, iw, ih)

		if dpi := float64(meta.Width) * 72.0 / iw; dpi < lowResDPI {
			w.Warnf("entry %d: attachment %s effective DPI %.0f is below %d",
				e.ID, filepath.Base(a.Path), dpi, int(lowResDPI))
		}
	}
}

// writeLineChecked writes a line and flags it in the trace when it lands
// beyond the content bottom (the clipped oversized-block fallback).
func writeLineChecked(w *press.Writer, line string, st press.Style) {
	w.WriteLine(line, st)
	if w.CursorY() > w.Geometry().ContentBottom()+0.01 {
		w.MarkOversized()
	}
}
