package verso

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	// snapToOneThreshold is the relative scale distance under which a pinch
	// end snaps back to unscaled instead of committing.
	snapToOneThreshold = 0.05
	// dragSensitivity multiplies raw drag translations before they are
	// applied as pan deltas.
	dragSensitivity = 2.0
	// dismissSwipeThreshold is the predicted end translation height (in
	// viewport units) above which a vertical swipe dismisses the panel.
	dismissSwipeThreshold = 30.0

	// doubleTapZoomDuration is the animated commit duration for double-tap
	// zoom transitions, in seconds.
	doubleTapZoomDuration float32 = 0.25
	// snapDuration is the animated commit duration for the pinch-end
	// snap-to-one transition, in seconds.
	snapDuration float32 = 0.2
)

// Transition is a transform commit emitted by the Coordinator. Duration 0
// means apply To immediately; a positive Duration asks the rendering layer
// (typically an Animator) to ease toward To over that many seconds. The
// Coordinator itself performs no time-based interpolation.
type Transition struct {
	To       Transform
	Duration float32
	Ease     ease.TweenFunc
}

// Coordinator is the gesture-to-transform state machine. It owns the live
// view transform and the base/accumulator state behind it, exposes one
// handler per resolved gesture kind, and dispatches navigation and panel
// side effects through an injected Navigator.
//
// Handlers run to completion on the caller's goroutine; gesture delivery
// must be sequential for a given Coordinator. Drag and pinch handlers are
// silent no-ops when their precondition fails, so recognizers can be
// registered unconditionally.
type Coordinator struct {
	metrics  Metrics
	nav      Navigator
	settings Settings

	current Transform

	// Accumulator: committed values a gesture sequence applies deltas to.
	baseScale  float64
	baseOffset Offset
	panDelta   Offset

	listener func(Transition)
}

// NewCoordinator creates a Coordinator reading viewport sizes from metrics,
// dispatching side effects to nav (which may be nil), and configured with
// settings. The transform starts at the unscaled, centered default.
func NewCoordinator(metrics Metrics, nav Navigator, settings Settings) *Coordinator {
	c := &Coordinator{metrics: metrics, nav: nav}
	c.Setup(settings)
	return c
}

// SetTransformListener registers fn to be invoked with a Transition after
// every state-mutating handler. Pass nil to remove the listener.
func (c *Coordinator) SetTransformListener(fn func(Transition)) {
	c.listener = fn
}

// Transform returns a snapshot of the current view transform.
func (c *Coordinator) Transform() Transform {
	return c.current
}

// Settings returns the active settings.
func (c *Coordinator) Settings() Settings {
	return c.settings
}

// Setup replaces the configuration and starts a fresh session with the
// transform at its defaults.
func (c *Coordinator) Setup(settings Settings) {
	c.settings = settings
	c.reset()
}

// Cleanup resets all transform and accumulator state to defaults. Safe to
// call redundantly.
func (c *Coordinator) Cleanup() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.current = defaultTransform()
	c.commitBase()
	c.publish(Transition{To: c.current})
}

// commitBase captures the current transform as the base a new gesture
// sequence accumulates against.
func (c *Coordinator) commitBase() {
	c.baseScale = c.current.Scale
	c.baseOffset = c.current.Offset
	c.panDelta = Offset{}
}

// clampScale funnels every scale mutation through the single legal range.
// There is no lower bound below 1: the reader never zooms out past fit.
func (c *Coordinator) clampScale(v float64) float64 {
	return clamp(v, 1, c.settings.MaximumScale)
}

func (c *Coordinator) publish(t Transition) {
	if c.listener != nil {
		c.listener(t)
	}
}

// --- Tap handling ---

// HandleTap processes a single tap at the given point. A nil point (no
// known touch location) or vertical reading mode toggles the panel without
// region logic; otherwise the tap region decides between panel toggle and
// page navigation, with the delta flipped for right-to-left reading.
func (c *Coordinator) HandleTap(at *Point) {
	if c.nav == nil {
		return
	}
	if c.settings.Direction == DirectionVertical || at == nil {
		c.nav.TogglePanel()
		return
	}
	w, _ := c.metrics.ViewportSize()
	switch classifyTapRegion(at.X, w) {
	case TapRegionLeft:
		c.nav.Navigate(c.pageDelta(-1))
	case TapRegionRight:
		c.nav.Navigate(c.pageDelta(+1))
	default:
		c.nav.TogglePanel()
	}
}

// pageDelta flips a navigation delta when reading right-to-left, where the
// left hotzone means "next page".
func (c *Coordinator) pageDelta(delta int) int {
	if c.settings.Direction == DirectionRightToLeft {
		return -delta
	}
	return delta
}

// HandleDoubleTap toggles between the double-tap zoom level and unscaled,
// anchoring the zoom at the tapped point (viewport center when at is nil).
// The commit is animated over doubleTapZoomDuration with ease-in-out.
func (c *Coordinator) HandleDoubleTap(at *Point) {
	w, h := c.metrics.ViewportSize()

	target := c.clampScale(c.settings.DoubleTapScale)
	if c.current.Scale != 1 {
		target = 1
	}

	if target == 1 {
		c.current = defaultTransform()
	} else {
		p := Point{X: w / 2, Y: h / 2}
		if at != nil {
			p = *at
		}
		c.current.Anchor = resolveScaleAnchor(p, c.settings.Direction, w, h)
		c.current.Scale = target
		c.current.Offset = constrainOffset(c.current.Offset, target, w, h)
	}
	c.commitBase()
	c.publish(Transition{To: c.current, Duration: doubleTapZoomDuration, Ease: ease.InOutQuad})
}

// --- Pinch handling ---

// HandlePinchChanged processes an in-progress magnification. value is the
// relative gesture magnification, 1.0 at sequence start; the base scale is
// captured on that first event. The anchor follows the touch point (viewport
// center when at is nil) and the offset is re-constrained in place.
func (c *Coordinator) HandlePinchChanged(value float64, at *Point) {
	w, h := c.metrics.ViewportSize()

	if value == 1.0 {
		c.baseScale = c.current.Scale
	}

	p := Point{X: w / 2, Y: h / 2}
	if at != nil {
		p = *at
	}
	c.current.Anchor = resolveScaleAnchor(p, c.settings.Direction, w, h)
	c.current.Scale = c.clampScale(value * c.baseScale)
	c.current.Offset = constrainOffset(c.current.Offset, c.current.Scale, w, h)
	c.publish(Transition{To: c.current})
}

// HandlePinchEnded commits the final pinch scale. A final scale within
// snapToOneThreshold of 1 snaps back to the unscaled default with an
// animated ease-out; anything else commits immediately with the offset
// re-constrained for the new scale.
func (c *Coordinator) HandlePinchEnded(value float64) {
	w, h := c.metrics.ViewportSize()

	final := c.clampScale(value * c.baseScale)
	if math.Abs(final-1) < snapToOneThreshold {
		c.current = defaultTransform()
		c.commitBase()
		c.publish(Transition{To: c.current, Duration: snapDuration, Ease: ease.OutQuad})
		return
	}

	c.current.Scale = final
	c.current.Offset = constrainOffset(c.current.Offset, final, w, h)
	c.commitBase()
	c.publish(Transition{To: c.current})
}

// --- Drag handling ---

// HandleDragStarted begins a pan sequence. No-op unless zoomed in. The pan
// delta is reset unconditionally, which also recovers from a drag sequence
// the OS interrupted before its end event.
func (c *Coordinator) HandleDragStarted() {
	if c.current.Scale <= 1 {
		return
	}
	c.baseOffset = c.current.Offset
	c.panDelta = Offset{}
}

// HandleDragChanged applies an in-progress drag translation (cumulative from
// the start of the gesture). No-op unless zoomed in. The translation is
// scaled by dragSensitivity and the resulting candidate offset constrained
// before publishing, so accumulated deltas can never escape the pan bounds.
func (c *Coordinator) HandleDragChanged(translation Offset) {
	if c.current.Scale <= 1 {
		return
	}
	w, h := c.metrics.ViewportSize()

	c.panDelta = Offset{
		Width:  translation.Width * dragSensitivity,
		Height: translation.Height * dragSensitivity,
	}
	candidate := Offset{
		Width:  c.baseOffset.Width + c.panDelta.Width,
		Height: c.baseOffset.Height + c.panDelta.Height,
	}
	c.current.Offset = constrainOffset(candidate, c.current.Scale, w, h)
	c.publish(Transition{To: c.current})
}

// HandleDragEnded commits the pan sequence. No-op unless zoomed in.
func (c *Coordinator) HandleDragEnded() {
	if c.current.Scale <= 1 {
		return
	}
	w, h := c.metrics.ViewportSize()

	c.current.Offset = constrainOffset(c.current.Offset, c.current.Scale, w, h)
	c.commitBase()
	c.publish(Transition{To: c.current})
}

// --- Panel dismiss swipe ---

// HandleDismissSwipe dismisses the overlay panel when the predicted end
// translation of a vertical swipe exceeds dismissSwipeThreshold.
func (c *Coordinator) HandleDismissSwipe(predicted Offset) {
	if predicted.Height <= dismissSwipeThreshold {
		return
	}
	if c.nav != nil {
		c.nav.DismissPanel()
	}
}
