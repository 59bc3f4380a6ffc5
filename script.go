package verso

import (
	"encoding/json"
	"fmt"
)

// gestureStep is a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Value  float64 `json:"value,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// ScriptRunner replays a scripted gesture sequence against a Coordinator,
// one step per frame, for deterministic demos and end-to-end tests.
//
// Supported actions: "tap" (x, y), "doubleTap" (x, y), "pinch" (value, x, y),
// "pinchEnd" (value), "dragStart", "drag" (dx, dy), "dragEnd",
// "swipe" (dx, dy), and "wait" (frames).
type ScriptRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next step of the script against c. Call once per frame.
func (r *ScriptRunner) Step(c *Coordinator) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		c.HandleTap(&Point{X: st.X, Y: st.Y})
	case "doubleTap":
		c.HandleDoubleTap(&Point{X: st.X, Y: st.Y})
	case "pinch":
		c.HandlePinchChanged(st.Value, &Point{X: st.X, Y: st.Y})
	case "pinchEnd":
		c.HandlePinchEnded(st.Value)
	case "dragStart":
		c.HandleDragStarted()
	case "drag":
		c.HandleDragChanged(Offset{Width: st.DX, Height: st.DY})
	case "dragEnd":
		c.HandleDragEnded()
	case "swipe":
		c.HandleDismissSwipe(Offset{Width: st.DX, Height: st.DY})
	case "wait":
		if st.Frames > 1 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
