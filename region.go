package verso

// tapRegionThreshold is the fraction of the viewport width occupied by each
// of the left and right navigation hotzones.
const tapRegionThreshold = 0.2

// classifyTapRegion maps a horizontal tap position to a viewport hotzone.
// The comparison is done on the normalized fraction x/viewportW so the
// region edges land exactly on the threshold regardless of viewport size.
func classifyTapRegion(x, viewportW float64) TapRegion {
	if viewportW <= 0 {
		return TapRegionCenter
	}
	frac := x / viewportW
	switch {
	case frac < tapRegionThreshold:
		return TapRegionLeft
	case frac > 1-tapRegionThreshold:
		return TapRegionRight
	default:
		return TapRegionCenter
	}
}
