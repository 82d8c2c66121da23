package pinchzoom

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action   string    `json:"action"`
	Contacts []Contact `json:"contacts,omitempty"`
	IDs      [2]int    `json:"ids"`
	From     [2]Vec2   `json:"from"`
	To       [2]Vec2   `json:"to"`
	Frames   int       `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// GestureScript replays recorded touch input through a TouchTracker, one
// step per frame. Useful for automated checks of canvas behavior without a
// touch screen.
//
// Steps:
//
//	{"action": "touch", "contacts": [{"id": 1, "x": 10, "y": 20}]}
//	{"action": "pinch", "ids": [1, 2], "from": [{"x": 0, "y": 0}, {"x": 100, "y": 0}], "to": [...], "frames": 10}
//	{"action": "release"}
//	{"action": "wait", "frames": 3}
type GestureScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(data []byte) (*GestureScript, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "touch", "pinch", "release", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "pinch" && st.IDs[0] == st.IDs[1] {
			return nil, fmt.Errorf("parse gesture script: step %d: pinch needs two distinct ids", i)
		}
	}
	return &GestureScript{steps: f.Steps}, nil
}

// SetScript attaches a gesture script. It advances from Update before input
// is read each frame. Pass nil to detach.
func (t *TouchTracker) SetScript(s *GestureScript) {
	t.script = s
}

// Done reports whether every step has been executed and its input consumed.
func (s *GestureScript) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *GestureScript) step(t *TouchTracker) {
	if s.done {
		return
	}
	// Wait for queued frames to drain before advancing.
	if len(t.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "touch":
		t.InjectFrame(st.Contacts)
	case "pinch":
		t.InjectPinch(st.IDs[0], st.IDs[1], st.From, st.To, st.Frames)
	case "release":
		t.InjectRelease()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	}
}
