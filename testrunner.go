package swipemenu

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Index  int     `json:"index,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner sequences injected input across frames for automated
// testing and demos. Attach to a Menu via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner ready
// to be attached to a Menu via SetGestureRunner.
//
// Supported actions: press, move, release, tap (x, y); swipe (fromX, fromY,
// toX, toY, frames); wait (frames); item (index) animates to an item;
// screenshot (label) captures the next drawn frame.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "tap", "swipe", "wait", "item", "screenshot":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner to the menu. The runner's step method
// is called from Menu.Update before input is polled each frame.
func (m *Menu) SetGestureRunner(runner *GestureRunner) {
	m.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Menu.Update.
func (r *GestureRunner) step(m *Menu) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if m.inject.Pending() > 0 {
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
	case "screenshot":
		m.Screenshot(st.Label)
	case "press":
		m.inject.InjectPress(st.X, st.Y)
	case "move":
		m.inject.InjectMove(st.X, st.Y)
	case "release":
		m.inject.InjectRelease(st.X, st.Y)
	case "tap":
		m.inject.InjectTap(st.X, st.Y)
	case "swipe":
		m.inject.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "item":
		m.ctrl.AnimateToItem(m.ctrl.Slot(st.Index))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && m.inject.Pending() == 0 {
		r.done = true
	}
}
