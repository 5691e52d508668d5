package press

// Style describes a text style: core PDF font, size, line leading, and color.
type Style struct {
	Family  string
	Weight  string // "" regular, "B" bold
	Size    float64
	Leading float64
	R, G, B int
}

// The minimal journal design: near-black text, gray accents.
var (
	// StyleTitle is the large document title on the first page.
	StyleTitle = Style{Family: "Helvetica", Weight: "B", Size: 36, Leading: 42, R: 26, G: 26, B: 26}
	// StyleHeader is the running document title at the top of every page.
	StyleHeader = Style{Family: "Helvetica", Size: 9, Leading: 11, R: 102, G: 102, B: 102}
	// StyleEntryTitle heads a single entry.
	StyleEntryTitle = Style{Family: "Helvetica", Weight: "B", Size: 14, Leading: 18, R: 26, G: 26, B: 26}
	// StyleDate is the boxed date badge text.
	StyleDate = Style{Family: "Helvetica", Size: 9, Leading: 11, R: 102, G: 102, B: 102}
	// StyleBody is entry body text.
	StyleBody = Style{Family: "Helvetica", Size: 10, Leading: 14, R: 26, G: 26, B: 26}
	// StyleFolio is the centered footer page number.
	StyleFolio = Style{Family: "Helvetica", Size: 8, Leading: 10, R: 102, G: 102, B: 102}
)

// Grayscale values for rules and the date badge.
const (
	dividerGray    = 224 // entry divider rule
	badgeFillGray  = 245 // date badge background
	badgeEdgeGray  = 204 // date badge border
	badgePaddingPt = 8.0
	badgeInsetPt   = 10.0 // horizontal text inset inside the badge
)
