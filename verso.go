package verso

// Point is a touch location in viewport coordinates (device-independent
// units, origin at the top-left, Y increasing downward).
type Point struct {
	X, Y float64
}

// Offset is a visual pan offset in viewport coordinates. Positive Width
// moves the page right, positive Height moves it down.
type Offset struct {
	Width, Height float64
}

// Anchor is a normalized point in [0,1]x[0,1] about which zoom is
// visually centered. (0,0) is the top-left of the viewport.
type Anchor struct {
	X, Y float64
}

// AnchorCenter is the default anchor: zoom centered on the viewport.
var AnchorCenter = Anchor{X: 0.5, Y: 0.5}

// Transform is the published view transform the rendering layer applies to
// the current page. It is exposed as a value snapshot only; all mutation
// happens inside a Coordinator.
type Transform struct {
	// Scale is the zoom factor. Always in [1, Settings.MaximumScale].
	Scale float64
	// Offset is the pan offset. Always within the bounds returned by
	// constrainOffset for the current scale and viewport.
	Offset Offset
	// Anchor is the normalized scale anchor.
	Anchor Anchor
}

// defaultTransform is the unscaled, centered resting transform.
func defaultTransform() Transform {
	return Transform{Scale: 1, Anchor: AnchorCenter}
}

// ReadingDirection selects how taps map to page navigation and how zoom
// anchoring behaves.
type ReadingDirection uint8

const (
	DirectionLeftToRight ReadingDirection = iota // western comics, books
	DirectionRightToLeft                         // manga
	DirectionVertical                            // webtoons / long strip
)

// Settings holds the per-session reader preferences a Coordinator is
// configured with. Reapply via Coordinator.Setup when they change.
type Settings struct {
	Direction ReadingDirection
	// DoubleTapScale is the zoom factor a double tap toggles to.
	DoubleTapScale float64
	// MaximumScale is the upper bound for all zoom gestures.
	MaximumScale float64
}

// TapRegion identifies which horizontal hotzone of the viewport a tap
// landed in.
type TapRegion uint8

const (
	TapRegionLeft   TapRegion = iota // leading hotzone, navigates a page
	TapRegionCenter                  // middle, toggles the overlay panel
	TapRegionRight                   // trailing hotzone, navigates a page
)

// Navigator receives the navigation and panel side effects a Coordinator
// dispatches. Implementations are invoked synchronously from gesture
// handlers and must not call back into the Coordinator.
type Navigator interface {
	// Navigate advances the page by delta (+1 forward, -1 backward).
	Navigate(delta int)
	// TogglePanel shows or hides the reader's overlay panel.
	TogglePanel()
	// DismissPanel hides the overlay panel after a dismiss swipe.
	DismissPanel()
}

// Metrics supplies the current viewport size. It is read at every handler
// call rather than cached, since device rotation can change it between
// gestures.
type Metrics interface {
	ViewportSize() (w, h float64)
}

// MetricsFunc adapts a plain function to the Metrics interface.
type MetricsFunc func() (w, h float64)

// ViewportSize calls f.
func (f MetricsFunc) ViewportSize() (w, h float64) { return f() }

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
