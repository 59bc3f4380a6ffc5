package verso

// maxPanOffset returns the half-extent of the legal pan range for the given
// scale and viewport. A page scaled by s overhangs the viewport by
// viewport*(s-1) in each dimension, half of it on each side. The formula is
// the same for every reading direction: once the anchor has been resolved,
// both dimensions scale symmetrically about the viewport center.
func maxPanOffset(scale, viewportW, viewportH float64) (maxX, maxY float64) {
	maxX = viewportW * (scale - 1) / 2
	maxY = viewportH * (scale - 1) / 2
	// Below scale 1 there is no overhang to pan across.
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return maxX, maxY
}

// constrainOffset clamps a candidate pan offset into the legal range for the
// given scale and viewport. At scale 1 both bounds are zero, which is what
// snaps the page back to center when unscaled. Every offset mutation must
// pass through here before being published.
func constrainOffset(candidate Offset, scale, viewportW, viewportH float64) Offset {
	maxX, maxY := maxPanOffset(scale, viewportW, viewportH)
	return Offset{
		Width:  clamp(candidate.Width, -maxX, maxX),
		Height: clamp(candidate.Height, -maxY, maxY),
	}
}
