// Package verso is the interaction controller for a zoomable, pannable
// page-reading surface inside a paginated document or comic viewer.
//
// It translates resolved pointer gestures (single tap, double tap, pinch,
// drag, panel-dismiss swipe) into a bounded view transform (scale, pan
// offset, normalized scale anchor) and into navigation side effects
// (advance page, toggle overlay panel, dismiss panel).
//
// # Quick start
//
// Create a [Coordinator] with viewport metrics, a [Navigator] for side
// effects, and the reader [Settings]:
//
//	coord := verso.NewCoordinator(metrics, nav, verso.Settings{
//		Direction:      verso.DirectionLeftToRight,
//		DoubleTapScale: 2.5,
//		MaximumScale:   4,
//	})
//
// Feed it gestures yourself, or let a [Recognizer] translate raw
// [Ebitengine] mouse/touch state:
//
//	rec := verso.NewRecognizer(coord)
//	// each frame:
//	rec.Update(dt)
//
// Animated commits (double-tap zoom, pinch-end snap) are emitted as
// [Transition] values; attach an [Animator] to ease them:
//
//	anim := verso.NewAnimator()
//	coord.SetTransformListener(anim.Apply)
//	// each frame:
//	tf := anim.Update(dt)
//	op.GeoM = tf.GeoM(pageW, pageH, viewportW, viewportH)
//
// # Invariants
//
// The published transform always satisfies 1 <= Scale <= MaximumScale and
// keeps the offset inside the pan range for the current scale and viewport;
// every mutation path funnels through the same clamp and constraint
// functions, so accumulated gesture deltas cannot drift out of bounds.
// Drag and pinch handlers are no-ops (not errors) when their preconditions
// fail, so recognizers can be registered unconditionally.
//
// Gesture delivery for one Coordinator must be sequential; handlers run to
// completion on the caller's goroutine and no internal locking is used.
//
// [Ebitengine]: https://ebitengine.org
package verso
