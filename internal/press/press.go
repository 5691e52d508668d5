// Package press owns the PDF output stream and the page lifecycle. All fit
// decisions come from internal/layout; the encoder's automatic page breaking
// is disabled so page transitions are explicit state changes recorded in the
// placement trace.
package press

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/kozaktomas/journal-press/internal/layout"
)

// footerRisePt is the distance of the folio baseline above the page bottom.
const footerRisePt = 36.0

// Writer drives the PDF encoder page by page. Footers are drawn when a page
// closes (next page start or document end), so the page number is known at
// closing time without backward seeks.
type Writer struct {
	pdf     *fpdf.Fpdf
	geo     layout.Geometry
	title   string
	cursor  layout.Cursor
	pages   int
	pageTop float64 // cursor Y just below the header; breaks above this are no-ops
	entryID int     // current entry for trace attribution, 0 outside entries
	report  Report
}

// NewWriter creates a writer for the given geometry and document title.
// No page exists until the first StartPage call.
func NewWriter(geo layout.Geometry, title string) *Writer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geo.PageW, Ht: geo.PageH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(geo.MarginLeft, geo.MarginTop, geo.MarginRight)

	return &Writer{
		pdf:   pdf,
		geo:   geo,
		title: title,
	}
}

// Geometry returns the page geometry in force.
func (w *Writer) Geometry() layout.Geometry {
	return w.geo
}

// PageCount returns the number of pages started so far.
func (w *Writer) PageCount() int {
	return w.pages
}

// CursorY returns the current vertical write position.
func (w *Writer) CursorY() float64 {
	return w.cursor.Y
}

// SetEntry attributes subsequent placements to an entry id in the trace.
func (w *Writer) SetEntry(id int) {
	w.entryID = id
}

// Measure returns a layout measure function backed by the encoder's font
// metrics for the given style.
func (w *Writer) Measure(st Style) layout.Measure {
	return func(s string) float64 {
		return w.TextWidth(s, st)
	}
}

// TextWidth returns the rendered width of s in the given style.
func (w *Writer) TextWidth(s string, st Style) float64 {
	w.pdf.SetFont(st.Family, st.Weight, st.Size)
	return w.pdf.GetStringWidth(s)
}

// StartPage closes the current page, if any, and opens a fresh one: page
// counter incremented, cursor reset to content-top, header block placed.
func (w *Writer) StartPage() {
	if w.pages > 0 {
		w.closePage()
	}
	w.pdf.AddPage()
	w.pages++
	w.cursor.Reset(w.geo)
	w.report.Pages = append(w.report.Pages, ReportPage{Number: w.pages})
	w.placeHeader()
	w.pageTop = w.cursor.Y
}

// RequestPageBreak breaks the page unless the cursor still sits at the top of
// an empty page, so repeated requests never emit blank pages. Reports whether
// a break happened.
func (w *Writer) RequestPageBreak() bool {
	if w.cursor.Y <= w.pageTop+0.01 {
		return false
	}
	w.StartPage()
	return true
}

// EnsureRoom guarantees vertical room for a block of the given height,
// breaking the page when it does not fit. The fit is retried exactly once: a
// block taller than a whole fresh page is placed anyway and clipped by the
// page boundary.
func (w *Writer) EnsureRoom(blockHeight float64) bool {
	if layout.WillFit(w.cursor.Y, blockHeight, w.geo) {
		return false
	}
	return w.RequestPageBreak()
}

// Space advances the cursor by h without drawing.
func (w *Writer) Space(h float64) {
	w.cursor.Advance(h)
}

// WriteLine places one wrapped text line at the cursor and advances by the
// style leading. The caller has already made the fit decision.
func (w *Writer) WriteLine(text string, st Style) {
	w.setStyle(st)
	w.pdf.Text(w.cursor.X, w.cursor.Y+st.Size, text)
	w.record(blockKindForStyle(st), w.cursor.X, w.cursor.Y, w.pdf.GetStringWidth(text), st.Leading)
	w.cursor.Advance(st.Leading)
}

// DateBadgeHeight returns the fixed height of the boxed date badge.
func DateBadgeHeight() float64 {
	return StyleDate.Leading + 2*badgePaddingPt
}

// WriteDateBadge places the boxed date block spanning the content width.
func (w *Writer) WriteDateBadge(date string) {
	h := DateBadgeHeight()
	x, y := w.cursor.X, w.cursor.Y
	cw := w.geo.ContentWidth()

	w.pdf.SetFillColor(badgeFillGray, badgeFillGray, badgeFillGray)
	w.pdf.SetDrawColor(badgeEdgeGray, badgeEdgeGray, badgeEdgeGray)
	w.pdf.SetLineWidth(1)
	w.pdf.Rect(x, y, cw, h, "FD")

	w.setStyle(StyleDate)
	w.pdf.Text(x+badgeInsetPt, y+badgePaddingPt+StyleDate.Size, date)

	w.record(BlockDate, x, y, cw, h)
	w.cursor.Advance(h)
}

// WriteImage places an image file at the cursor with the given display size.
// The format must be one the encoder embeds natively (jpeg, png, gif).
func (w *Writer) WriteImage(path, format string, wpt, hpt float64) {
	opts := fpdf.ImageOptions{ImageType: imageTypeFor(format)}
	w.pdf.ImageOptions(path, w.cursor.X, w.cursor.Y, wpt, hpt, false, opts, 0, "")

	oversized := hpt > w.geo.ContentHeight()
	w.recordDetail(Placement{
		Kind: BlockImage, X: w.cursor.X, Y: w.cursor.Y, W: wpt, H: hpt,
		EntryID: w.entryID, Oversized: oversized,
	})
	w.cursor.Advance(hpt)
}

// WriteDivider draws the thin horizontal rule separating entries.
func (w *Writer) WriteDivider() {
	w.pdf.SetDrawColor(dividerGray, dividerGray, dividerGray)
	w.pdf.SetLineWidth(0.5)
	y := w.cursor.Y
	w.pdf.Line(w.cursor.X, y, w.cursor.X+w.geo.ContentWidth(), y)
	w.record(BlockDivider, w.cursor.X, y, w.geo.ContentWidth(), 0.5)
	w.cursor.Advance(0.5)
}

// MarkOversized flags the most recent trace block as placed beyond the
// content bottom after a failed retry.
func (w *Writer) MarkOversized() {
	if n := len(w.report.Pages); n > 0 {
		blocks := w.report.Pages[n-1].Blocks
		if len(blocks) > 0 {
			blocks[len(blocks)-1].Oversized = true
		}
	}
}

// Warnf appends a formatted warning to the report.
func (w *Writer) Warnf(format string, args ...any) {
	w.report.Warnings = append(w.report.Warnings, fmt.Sprintf(format, args...))
}

// Finalize closes the last page (drawing its footer) and writes the PDF to
// out. It returns the final page count and the placement report.
func (w *Writer) Finalize(out io.Writer) (int, *Report, error) {
	if w.pages > 0 {
		w.closePage()
	}
	if w.pdf.Err() {
		return 0, nil, fmt.Errorf("pdf encoder: %w", w.pdf.Error())
	}
	if err := w.pdf.Output(out); err != nil {
		return 0, nil, fmt.Errorf("write pdf: %w", err)
	}
	w.report.PageCount = w.pages
	return w.pages, &w.report, nil
}

// closePage draws the footer for the page being left. Called on the next
// page start or at document end, when the page number is final.
func (w *Writer) closePage() {
	w.setStyle(StyleFolio)
	label := fmt.Sprintf("%d", w.pages)
	x := w.geo.PageW/2 - w.pdf.GetStringWidth(label)/2
	y := w.geo.PageH - footerRisePt
	w.pdf.Text(x, y, label)

	w.recordDetail(Placement{
		Kind: BlockFooter, X: x, Y: y - StyleFolio.Size, W: w.pdf.GetStringWidth(label), H: StyleFolio.Leading,
	})
}

// placeHeader emits the running document title through the normal placement
// path, then a small gap before content.
func (w *Writer) placeHeader() {
	w.setStyle(StyleHeader)
	w.pdf.Text(w.cursor.X, w.cursor.Y+StyleHeader.Size, w.title)
	w.record(BlockHeader, w.cursor.X, w.cursor.Y, w.pdf.GetStringWidth(w.title), StyleHeader.Leading)
	w.cursor.Advance(StyleHeader.Leading + 10)
}

func (w *Writer) setStyle(st Style) {
	w.pdf.SetFont(st.Family, st.Weight, st.Size)
	w.pdf.SetTextColor(st.R, st.G, st.B)
}

func (w *Writer) record(kind BlockKind, x, y, wd, h float64) {
	w.recordDetail(Placement{Kind: kind, X: x, Y: y, W: wd, H: h, EntryID: w.entryID})
}

func (w *Writer) recordDetail(p Placement) {
	n := len(w.report.Pages)
	if n == 0 {
		return
	}
	w.report.Pages[n-1].Blocks = append(w.report.Pages[n-1].Blocks, p)
}

// blockKindForStyle maps a text style to its trace kind.
func blockKindForStyle(st Style) BlockKind {
	switch st {
	case StyleTitle, StyleEntryTitle:
		return BlockTitle
	case StyleHeader:
		return BlockHeader
	default:
		return BlockLine
	}
}

// imageTypeFor maps a registered image format name to fpdf's type tag.
func imageTypeFor(format string) string {
	switch format {
	case "jpeg":
		return "JPEG"
	case "png":
		return "PNG"
	case "gif":
		return "GIF"
	}
	return ""
}
