package layout

// Geometry holds the fixed physical page constants in PDF points.
// The content area is the page minus margins; blocks are placed top-down
// with Y increasing toward the page bottom (PDF reader convention).
type Geometry struct {
	PageW        float64
	PageH        float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	// MaxImageH bounds the placed height of any single image so a
	// multi-image entry cannot monopolize a page.
	MaxImageH float64
}

// Letter returns the default geometry: US letter with 1in side and top
// margins and a 0.75in bottom margin.
// 612 - 72 - 72 = 468pt content width.
func Letter() Geometry {
	return Geometry{
		PageW:        612.0,
		PageH:        792.0,
		MarginLeft:   72.0,
		MarginRight:  72.0,
		MarginTop:    72.0,
		MarginBottom: 54.0,
		MaxImageH:    216.0, // 3in
	}
}

// ContentWidth returns the usable horizontal space.
func (g Geometry) ContentWidth() float64 {
	return g.PageW - g.MarginLeft - g.MarginRight
}

// ContentTop returns the Y coordinate where page content starts.
func (g Geometry) ContentTop() float64 {
	return g.MarginTop
}

// ContentBottom returns the Y coordinate below which no block may extend.
func (g Geometry) ContentBottom() float64 {
	return g.PageH - g.MarginBottom
}

// ContentHeight returns the full vertical space available on an empty page.
func (g Geometry) ContentHeight() float64 {
	return g.ContentBottom() - g.ContentTop()
}

// Cursor tracks the next write position within the current page. It is
// owned by the page writer; reset to content-top whenever a page begins.
type Cursor struct {
	X float64
	Y float64
}

// Reset moves the cursor to the top-left of the content area.
func (c *Cursor) Reset(g Geometry) {
	c.X = g.MarginLeft
	c.Y = g.ContentTop()
}

// Advance moves the cursor down by h, keeping X unchanged.
func (c *Cursor) Advance(h float64) {
	c.Y += h
}
