package verso

// resolveScaleAnchor maps a touch point to the normalized anchor zoom is
// centered on. Vertical reading mode always anchors on the viewport center
// so zoom bounds stay centered on the page strip; otherwise the touch point
// is normalized against the viewport and clamped, guarding against points
// reported slightly outside the viewport.
func resolveScaleAnchor(p Point, dir ReadingDirection, viewportW, viewportH float64) Anchor {
	if dir == DirectionVertical || viewportW <= 0 || viewportH <= 0 {
		return AnchorCenter
	}
	return Anchor{
		X: clamp(p.X/viewportW, 0, 1),
		Y: clamp(p.Y/viewportH, 0, 1),
	}
}
