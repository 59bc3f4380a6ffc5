package verso

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimatorImmediateApply(t *testing.T) {
	a := NewAnimator()
	target := Transform{Scale: 2, Offset: Offset{Width: 10, Height: -10}, Anchor: Anchor{X: 0.2, Y: 0.8}}

	a.Apply(Transition{To: target})

	if a.Animating() {
		t.Error("immediate apply left animator active")
	}
	if got := a.Transform(); got != target {
		t.Errorf("transform = %+v, want %+v", got, target)
	}
}

func TestAnimatorEasesTowardTarget(t *testing.T) {
	a := NewAnimator()
	target := Transform{Scale: 3, Offset: Offset{Width: 100, Height: 50}, Anchor: Anchor{X: 0.25, Y: 0.75}}

	a.Apply(Transition{To: target, Duration: 0.5, Ease: ease.Linear})
	if !a.Animating() {
		t.Fatal("animator not active after animated apply")
	}

	mid := a.Update(0.25)
	if !approxEqual(mid.Scale, 2, 1e-3) {
		t.Errorf("scale halfway = %v, want ~2", mid.Scale)
	}
	if !approxEqual(mid.Offset.Width, 50, 1e-3) {
		t.Errorf("offset width halfway = %v, want ~50", mid.Offset.Width)
	}

	end := a.Update(0.25)
	if a.Animating() {
		t.Error("animator still active after full duration")
	}
	if !approxEqual(end.Scale, 3, 1e-3) || !approxEqual(end.Offset.Width, 100, 1e-3) ||
		!approxEqual(end.Anchor.X, 0.25, 1e-3) {
		t.Errorf("end transform = %+v, want %+v", end, target)
	}
}

func TestAnimatorOvershootCompletes(t *testing.T) {
	a := NewAnimator()
	a.Apply(Transition{To: Transform{Scale: 2, Anchor: AnchorCenter}, Duration: 0.2, Ease: ease.OutQuad})

	got := a.Update(5)
	if a.Animating() {
		t.Error("animator active after overshooting duration")
	}
	if !approxEqual(got.Scale, 2, 1e-3) {
		t.Errorf("scale = %v, want 2", got.Scale)
	}
}

func TestAnimatorNilEaseDefaultsToLinear(t *testing.T) {
	a := NewAnimator()
	a.Apply(Transition{To: Transform{Scale: 2, Anchor: AnchorCenter}, Duration: 0.1})

	got := a.Update(0.1)
	if !approxEqual(got.Scale, 2, 1e-3) {
		t.Errorf("scale = %v, want 2", got.Scale)
	}
}

func TestAnimatorNewTransitionSupersedes(t *testing.T) {
	a := NewAnimator()
	a.Apply(Transition{To: Transform{Scale: 4, Anchor: AnchorCenter}, Duration: 1, Ease: ease.Linear})
	a.Update(0.5)

	// An immediate commit (e.g. a pinch-changed publish) cancels the tween.
	a.Apply(Transition{To: defaultTransform()})
	if a.Animating() {
		t.Error("superseded animation still active")
	}
	if got := a.Update(1); got != defaultTransform() {
		t.Errorf("transform = %+v, want defaults", got)
	}
}

func TestCoordinatorDrivesAnimator(t *testing.T) {
	c, _ := newTestCoordinator(DirectionLeftToRight)
	a := NewAnimator()
	c.SetTransformListener(a.Apply)

	c.HandleDoubleTap(&Point{X: 500, Y: 400})
	if !a.Animating() {
		t.Fatal("double tap did not start an animation")
	}
	got := a.Update(doubleTapZoomDuration)
	if !approxEqual(got.Scale, 2.5, 1e-3) {
		t.Errorf("scale after animation = %v, want 2.5", got.Scale)
	}
}
