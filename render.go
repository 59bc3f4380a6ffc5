package verso

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM builds the ebiten draw matrix that places a page of pageW x pageH
// pixels into a viewportW x viewportH viewport with this transform applied.
//
// The page is first aspect-fit and centered in the viewport (the scale-1
// resting layout), then zoomed about the anchor point and shifted by the
// pan offset. With a zero offset, the viewport point the anchor names stays
// fixed under zoom.
func (t Transform) GeoM(pageW, pageH, viewportW, viewportH float64) ebiten.GeoM {
	var g ebiten.GeoM
	if pageW <= 0 || pageH <= 0 {
		return g
	}

	fit := math.Min(viewportW/pageW, viewportH/pageH)
	g.Scale(fit, fit)
	g.Translate((viewportW-pageW*fit)/2, (viewportH-pageH*fit)/2)

	// Zoom about the anchor point, then pan.
	ax := t.Anchor.X * viewportW
	ay := t.Anchor.Y * viewportH
	g.Translate(-ax, -ay)
	g.Scale(t.Scale, t.Scale)
	g.Translate(ax+t.Offset.Width, ay+t.Offset.Height)
	return g
}
