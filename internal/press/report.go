package press

// BlockKind enumerates the indivisible layout units placed on pages.
type BlockKind string

// Block kinds recorded in the placement trace.
const (
	BlockHeader  BlockKind = "header"
	BlockTitle   BlockKind = "title"
	BlockDate    BlockKind = "date"
	BlockLine    BlockKind = "line"
	BlockImage   BlockKind = "image"
	BlockDivider BlockKind = "divider"
	BlockFooter  BlockKind = "footer"
)

// Placement records one placed block for the export report. Coordinates are
// page points with Y measured from the page top.
type Placement struct {
	Kind    BlockKind `json:"kind"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	W       float64   `json:"w"`
	H       float64   `json:"h"`
	EntryID int       `json:"entry_id,omitempty"`
	// Oversized marks a block taller than a full page, placed clipped.
	Oversized bool `json:"oversized,omitempty"`
}

// ReportPage describes a single produced page.
type ReportPage struct {
	Number int         `json:"number"`
	Blocks []Placement `json:"blocks"`
}

// Report contains the placement trace of one export, used for validation,
// warnings, and determinism checks.
type Report struct {
	PageCount int          `json:"page_count"`
	Pages     []ReportPage `json:"pages"`
	Warnings  []string     `json:"warnings,omitempty"`
}
