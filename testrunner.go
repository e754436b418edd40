package rotary

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Indices []int   `json:"indices,omitempty"`
	Word    string  `json:"word,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "tap": true,
	"drag": true, "trace": true, "abort": true, "wait": true,
	"expect": true, "screenshot": true,
}

// TestRunner sequences injected gestures and word expectations across
// frames for automated testing. Attach to a Keyboard via SetTestRunner.
type TestRunner struct {
	// OnScreenshot is called for "screenshot" steps. Renderers set it; when
	// nil the step is skipped.
	OnScreenshot func(label string)

	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	handle   CallbackHandle
	lastWord string
	hasWord  bool
	failures []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Keyboard via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the keyboard, replacing any previous
// runner. The runner's step method is called from Keyboard.Update before
// injected input is processed each frame. Pass nil to detach.
func (k *Keyboard) SetTestRunner(runner *TestRunner) {
	if k.testRunner != nil {
		k.testRunner.handle.Remove()
	}
	k.testRunner = runner
	if runner == nil {
		return
	}
	runner.handle = k.OnWordEvent(func(ev WordEvent) {
		if ev.Kind == WordEntered {
			runner.lastWord = ev.Word
			runner.hasWord = true
		}
	})
}

// TestRunner returns the attached runner, or nil.
func (k *Keyboard) TestRunner() *TestRunner {
	return k.testRunner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of every "expect" step that did not match.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Keyboard.Update.
func (r *TestRunner) step(k *Keyboard) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(k.injectQueue) > 0 {
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
	case "press":
		k.InjectPress(Pt(st.X, st.Y))
	case "move":
		k.InjectMove(Pt(st.X, st.Y))
	case "release":
		k.InjectRelease(Pt(st.X, st.Y))
	case "tap":
		k.InjectTap(Pt(st.X, st.Y))
	case "abort":
		k.InjectAbort()
	case "drag":
		k.InjectDrag(Pt(st.FromX, st.FromY), Pt(st.ToX, st.ToY), st.Frames)
	case "trace":
		if !k.InjectTrace(st.Indices...) {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: cannot trace %v", r.cursor-1, st.Indices))
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		switch {
		case !r.hasWord:
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: expected word %q, none entered", r.cursor-1, st.Word))
		case r.lastWord != st.Word:
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: expected word %q, got %q", r.cursor-1, st.Word, r.lastWord))
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(k.injectQueue) == 0 {
		r.done = true
	}
}
