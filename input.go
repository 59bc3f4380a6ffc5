package verso

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// tapSlop is the maximum movement, in viewport units, for a press to
	// still count as a tap on release.
	tapSlop = 8.0
	// doubleTapSlop is the maximum distance between two taps for the pair
	// to count as a double tap.
	doubleTapSlop = 32.0
	// doubleTapWindow is how long, in seconds, a single tap is withheld
	// waiting for a second tap.
	doubleTapWindow float32 = 0.3
	// swipeProjection is the velocity lookahead, in seconds, used to
	// predict the end translation of a dismiss swipe.
	swipeProjection = 0.1
)

// pointerState tracks one pointer (mouse or touch slot) across frames.
type pointerState struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	moved          bool // exceeded tapSlop; release is a drag end, not a tap
	suppressed     bool // consumed by a pinch; release fires nothing
	vx, vy         float64
}

type pinchState struct {
	active      bool
	initialDist float64
	lastValue   float64
}

// syntheticPointerEvent is a single injected pointer event, consumed one
// per frame in place of real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// Recognizer translates raw ebiten mouse and touch state into the resolved
// gesture events a Coordinator consumes: taps, double taps, drags, pinches,
// and panel-dismiss swipes. Call Update once per frame with the frame delta
// in seconds.
//
// Arbitration rules: two concurrent touches become a pinch and suppress
// their pointers' tap and drag tracking; a drag that ends while the view is
// not zoomed is reported as a dismiss-swipe candidate instead of a pan end
// (pan handlers are no-ops below zoom anyway). Single taps are withheld for
// doubleTapWindow to distinguish double taps.
type Recognizer struct {
	coord *Coordinator

	pointers  [maxPointers]pointerState
	touchUsed [maxPointers]bool
	touchMap  [maxPointers]ebiten.TouchID
	touchIDs  []ebiten.TouchID

	pinch pinchState

	tapPending bool
	tapPoint   Point
	tapElapsed float32

	injectQueue []syntheticPointerEvent
}

// NewRecognizer creates a Recognizer feeding coord.
func NewRecognizer(coord *Coordinator) *Recognizer {
	return &Recognizer{coord: coord}
}

// Update reads the current ebiten input state and advances the gesture
// state machine by dt seconds.
func (r *Recognizer) Update(dt float32) {
	r.tick(dt)
	if !r.processInjected(dt) {
		r.processMouse(dt)
	}
	r.processTouches(dt)
	r.detectPinch()
}

// tick advances the withheld-tap timer, dispatching the single tap once the
// double-tap window closes.
func (r *Recognizer) tick(dt float32) {
	if !r.tapPending {
		return
	}
	r.tapElapsed += dt
	if r.tapElapsed >= doubleTapWindow {
		p := r.tapPoint
		r.tapPending = false
		r.coord.HandleTap(&p)
	}
}

// --- Injection (synthetic input for scripts and tests) ---

// InjectPress queues a pointer press at the given viewport coordinates.
// The event is consumed on the next Update call in place of mouse input.
func (r *Recognizer) InjectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (r *Recognizer) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given viewport coordinates.
func (r *Recognizer) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (r *Recognizer) InjectTap(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// processInjected pops one queued synthetic event. Returns true if an event
// was consumed (real mouse input is skipped that frame).
func (r *Recognizer) processInjected(dt float32) bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	r.processPointer(0, evt.x, evt.y, evt.pressed, dt)
	return true
}

// --- Platform input ---

func (r *Recognizer) processMouse(dt float32) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	r.processPointer(0, float64(mx), float64(my), pressed, dt)
}

func (r *Recognizer) processTouches(dt float32) {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range r.touchIDs {
		slot := r.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		r.processPointer(slot, float64(tx), float64(ty), true, dt)
	}

	// Release touch slots that disappeared this frame.
	for i := 1; i < maxPointers; i++ {
		if r.touchUsed[i] && !activeSlots[i] {
			ps := &r.pointers[i]
			if ps.down {
				r.processPointer(i, ps.lastX, ps.lastY, false, dt)
			}
			r.touchUsed[i] = false
			r.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating a
// new one if needed. Returns -1 if all slots are in use.
func (r *Recognizer) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if r.touchUsed[i] && r.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !r.touchUsed[i] {
			r.touchUsed[i] = true
			r.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Pointer state machine ---

// processPointer runs the per-pointer state machine for a single pointer
// sample. dt is the frame delta used for velocity estimation.
func (r *Recognizer) processPointer(pointerID int, x, y float64, pressed bool, dt float32) {
	ps := &r.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.moved = false
		ps.suppressed = false
		ps.vx, ps.vy = 0, 0

	case pressed && ps.down:
		if dt > 0 {
			ps.vx = (x - ps.lastX) / float64(dt)
			ps.vy = (y - ps.lastY) / float64(dt)
		}
		ps.lastX, ps.lastY = x, y

		if ps.suppressed || r.pinch.active {
			return
		}
		if !ps.moved {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Hypot(dx, dy) > tapSlop {
				ps.moved = true
				r.coord.HandleDragStarted()
			}
		}
		if ps.moved {
			r.coord.HandleDragChanged(Offset{
				Width:  x - ps.startX,
				Height: y - ps.startY,
			})
		}

	case !pressed && ps.down:
		ps.down = false
		if ps.suppressed {
			return
		}
		if ps.moved {
			r.endDrag(ps, x, y)
			return
		}
		r.registerTap(Point{X: x, Y: y})
	}
}

// endDrag finishes a moved pointer sequence: a pan commit while zoomed, a
// dismiss-swipe candidate otherwise. The predicted end translation projects
// the release velocity swipeProjection seconds ahead.
func (r *Recognizer) endDrag(ps *pointerState, x, y float64) {
	if r.coord.Transform().Scale > 1 {
		r.coord.HandleDragEnded()
		return
	}
	r.coord.HandleDismissSwipe(Offset{
		Width:  x - ps.startX + ps.vx*swipeProjection,
		Height: y - ps.startY + ps.vy*swipeProjection,
	})
}

// registerTap dispatches a double tap when a tap is already pending nearby,
// otherwise withholds this tap for the double-tap window.
func (r *Recognizer) registerTap(p Point) {
	if r.tapPending &&
		math.Hypot(p.X-r.tapPoint.X, p.Y-r.tapPoint.Y) <= doubleTapSlop {
		r.tapPending = false
		r.coord.HandleDoubleTap(&p)
		return
	}
	if r.tapPending {
		// Second tap too far away: dispatch the withheld one now.
		prev := r.tapPoint
		r.coord.HandleTap(&prev)
	}
	r.tapPending = true
	r.tapPoint = p
	r.tapElapsed = 0
}

// --- Pinch detection ---

// detectPinch watches for two concurrent touch pointers. The magnification
// value reported to the Coordinator is dist/initialDist, so a sequence
// always opens at exactly 1.0 (which is what captures the base scale).
func (r *Recognizer) detectPinch() {
	var p0, p1 int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if r.pointers[i].down {
			if count == 0 {
				p0 = i
			} else if count == 1 {
				p1 = i
			}
			count++
		}
	}

	if count != 2 {
		if r.pinch.active {
			r.pinch.active = false
			r.coord.HandlePinchEnded(r.pinch.lastValue)
		}
		return
	}

	ps0 := &r.pointers[p0]
	ps1 := &r.pointers[p1]
	dist := math.Hypot(ps1.lastX-ps0.lastX, ps1.lastY-ps0.lastY)
	center := Point{
		X: (ps0.lastX + ps1.lastX) / 2,
		Y: (ps0.lastY + ps1.lastY) / 2,
	}

	if !r.pinch.active {
		r.pinch.active = true
		r.pinch.initialDist = dist
		r.pinch.lastValue = 1.0

		// The pinch owns both pointers; their releases fire nothing.
		ps0.suppressed = true
		ps1.suppressed = true
		r.coord.HandlePinchChanged(1.0, &center)
		return
	}

	value := 1.0
	if r.pinch.initialDist > 0 {
		value = dist / r.pinch.initialDist
	}
	r.pinch.lastValue = value
	r.coord.HandlePinchChanged(value, &center)
}
