package layout

import "math"

// fitEpsilon absorbs floating point noise in fit comparisons.
const fitEpsilon = 0.01

// WillFit reports whether a block of the given height, placed at currentY,
// stays above the content bottom. A false result means the caller must break
// the page before placing the block; the check is made before any write, so a
// break is never needed after placement.
func WillFit(currentY, blockHeight float64, g Geometry) bool {
	return currentY+blockHeight <= g.ContentBottom()+fitEpsilon
}

// ScaleImage computes the placed size in points for an image with intrinsic
// pixel dimensions. The image is scaled to fit availWidth and maxHeight,
// preserving aspect ratio and never upscaling above its intrinsic size.
// Zero or negative intrinsic dimensions yield a zero size.
func ScaleImage(intrinsicW, intrinsicH int, availWidth, maxHeight float64) (w, h float64) {
	if intrinsicW <= 0 || intrinsicH <= 0 {
		return 0, 0
	}
	scale := math.Min(availWidth/float64(intrinsicW), maxHeight/float64(intrinsicH))
	scale = math.Min(scale, 1.0)
	return float64(intrinsicW) * scale, float64(intrinsicH) * scale
}
