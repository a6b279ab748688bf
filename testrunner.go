package sintax

import (
	"encoding/json"
	"fmt"
)

// testStep is one entry of a script. Unused fields stay zero.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	W      int     `json:"w,omitempty"`
	H      int     `json:"h,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptActions maps an action name to what it does on the scene. The
// returned count is how many further frames the runner idles.
var scriptActions = map[string]func(s *Scene, st testStep) int{
	"move":       func(s *Scene, st testStep) int { s.InjectMove(st.X, st.Y); return 0 },
	"leave":      func(s *Scene, _ testStep) int { s.InjectLeave(); return 0 },
	"scroll":     func(s *Scene, st testStep) int { s.InjectScroll(st.DY); return 0 },
	"resize":     func(s *Scene, st testStep) int { s.InjectResize(st.W, st.H); return 0 },
	"screenshot": func(s *Scene, st testStep) int { s.Screenshot(st.Label); return 0 },
	"sweep": func(s *Scene, st testStep) int {
		s.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 1))
		return 0
	},
	// The frame that reads the wait counts as its first frame.
	"wait": func(_ *Scene, st testStep) int { return max(st.Frames-1, 0) },
}

// TestRunner replays a JSON script of pointer, scroll and resize input with
// screenshots in between, one step per frame. Injected events drain before
// the next step runs. Attach to a Scene via SetTestRunner.
//
//	{"steps": [
//		{"action": "sweep", "fromX": 0, "fromY": 300, "toX": 800, "toY": 300, "frames": 60},
//		{"action": "screenshot", "label": "lit"},
//		{"action": "scroll", "dy": 600},
//		{"action": "wait", "frames": 30},
//		{"action": "resize", "w": 640, "h": 480}
//	]}
type TestRunner struct {
	steps []testStep
	next  int
	idle  int
	done  bool
}

// LoadTestScript parses and checks a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("sintax: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("sintax: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("sintax: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. While attached, real devices are not
// polled.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the whole script has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at the start of every Scene update.
func (r *TestRunner) step(s *Scene) {
	switch {
	case r.done, len(s.injectQueue) > 0:
		return
	case r.idle > 0:
		r.idle--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}
	st := r.steps[r.next]
	r.next++
	r.idle = scriptActions[st.Action](s, st)
	r.done = r.next == len(r.steps) && r.idle == 0 && len(s.injectQueue) == 0
}
