package verso

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator executes the Transitions a Coordinator emits. Immediate commits
// (Duration 0) are applied on the spot; animated commits tween scale,
// offset, and anchor toward the target. Drive it from the render loop by
// calling Update(dt) each frame and applying the returned Transform.
//
// There is no global animation manager; the caller owns the update cadence,
// and a new Transition always supersedes an in-flight one.
type Animator struct {
	current Transform
	tweens  [5]*gween.Tween
	active  bool
}

// NewAnimator creates an Animator resting at the default transform.
func NewAnimator() *Animator {
	return &Animator{current: defaultTransform()}
}

// Apply accepts a Transition, typically as the Coordinator's transform
// listener. A zero Duration replaces the current transform immediately and
// cancels any in-flight animation.
func (a *Animator) Apply(t Transition) {
	if t.Duration <= 0 {
		a.current = t.To
		a.active = false
		return
	}
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	a.tweens[0] = gween.New(float32(a.current.Scale), float32(t.To.Scale), t.Duration, fn)
	a.tweens[1] = gween.New(float32(a.current.Offset.Width), float32(t.To.Offset.Width), t.Duration, fn)
	a.tweens[2] = gween.New(float32(a.current.Offset.Height), float32(t.To.Offset.Height), t.Duration, fn)
	a.tweens[3] = gween.New(float32(a.current.Anchor.X), float32(t.To.Anchor.X), t.Duration, fn)
	a.tweens[4] = gween.New(float32(a.current.Anchor.Y), float32(t.To.Anchor.Y), t.Duration, fn)
	a.active = true
}

// Update advances an in-flight transition by dt seconds and returns the
// transform to render this frame.
func (a *Animator) Update(dt float32) Transform {
	if !a.active {
		return a.current
	}

	var vals [5]float64
	allDone := true
	for i, tw := range a.tweens {
		v, done := tw.Update(dt)
		vals[i] = float64(v)
		if !done {
			allDone = false
		}
	}
	a.current.Scale = vals[0]
	a.current.Offset = Offset{Width: vals[1], Height: vals[2]}
	a.current.Anchor = Anchor{X: vals[3], Y: vals[4]}
	a.active = !allDone
	return a.current
}

// Transform returns the transform as of the last Update or Apply.
func (a *Animator) Transform() Transform {
	return a.current
}

// Animating reports whether a transition is still in flight.
func (a *Animator) Animating() bool {
	return a.active
}
