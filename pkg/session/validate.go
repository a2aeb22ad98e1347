package session

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-interview/pkg/attr"
)

// Rule names the invariant a violation breaks.
type Rule string

const (
	RuleStatus        Rule = "status"
	RuleContext       Rule = "context"
	RuleCurrentStep   Rule = "current-step"
	RuleCompleteness  Rule = "completeness"
	RuleProgressRange Rule = "progress-range"
	RuleFileValue     Rule = "file-value"
	RuleState         Rule = "state"
	RuleControl       Rule = "control"
	RuleSimulate      Rule = "simulate"
)

// Violation is one semantic-invariant failure found in a structurally valid
// session. It is distinct from a decode error: the payload parsed, but the
// engine and client would disagree about what it means.
type Violation struct {
	Path    string
	Rule    Rule
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Message, v.Rule)
}

// ValidationError aggregates the violations found in one session so callers
// can distinguish semantic failures from decode errors with errors.As.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "session: " + e.Violations[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "session: %d invariant violations:", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Validate checks every structural invariant of the snapshot and returns all
// violations found. It is a pure function with no side effects, usable as a
// pre-send sanity check on the server and a defensive decode check on the
// client. An empty result means the session is well formed.
func Validate(s Session) []Violation {
	var out []Violation
	report := func(path string, rule Rule, format string, args ...any) {
		out = append(out, Violation{Path: path, Rule: rule, Message: fmt.Sprintf(format, args...)})
	}

	if !s.Status.Known() {
		report("status", RuleStatus, "unknown status %q", s.Status)
	}
	if err := s.Context.Validate(); err != nil {
		report("context", RuleContext, "%v", err)
	}

	current := countCurrent(s.Steps)
	if current != 1 {
		report("steps", RuleCurrentStep, "%d steps marked current, want exactly 1", current)
	}
	walkSteps("steps", s.Steps, report)

	if s.Progress != nil {
		if s.Progress.Time < 0 {
			report("progress.time", RuleProgressRange, "time %v is negative", s.Progress.Time)
		}
		if s.Progress.Percentage < 0 || s.Progress.Percentage > 100 {
			report("progress.percentage", RuleProgressRange, "percentage %v is outside 0..100", s.Progress.Percentage)
		}
	}

	checkValues("data", s.Data.Values, report)

	for i, entry := range s.State {
		path := fmt.Sprintf("state[%d]", i)
		if entry.ID == "" {
			report(path, RuleState, "state entry is missing an id")
		}
		if entry.InstanceTemplate != "" && !entry.IsPlaceholder() {
			report(path, RuleState, "instance template %q lacks the %s marker", entry.InstanceTemplate, attr.InstanceIDKey)
		}
	}

	for i, ctrl := range s.Screen.Controls {
		if err := ctrl.Validate(); err != nil {
			report(fmt.Sprintf("screen.controls[%d]", i), RuleControl, "%v", err)
		}
	}

	return out
}

// Valid returns nil when the session holds, otherwise a *ValidationError
// carrying every violation.
func Valid(s Session) error {
	violations := Validate(s)
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func countCurrent(steps []Step) int {
	total := 0
	for _, step := range steps {
		if step.Current {
			total++
		}
		total += countCurrent(step.Steps)
	}
	return total
}

func walkSteps(path string, steps []Step, report func(string, Rule, string, ...any)) {
	for i, step := range steps {
		stepPath := fmt.Sprintf("%s[%d]", path, i)
		if err := step.Context.Validate(); err != nil {
			report(stepPath+".context", RuleContext, "%v", err)
		}
		if step.Complete {
			for j, child := range step.Steps {
				if !child.Complete {
					report(fmt.Sprintf("%s.steps[%d]", stepPath, j), RuleCompleteness,
						"step %s is complete but child %s is not", step.ID, child.ID)
				}
			}
		}
		walkSteps(stepPath+".steps", step.Steps, report)
	}
}

// checkValues re-verifies file values reachable through the data map,
// including nested entity rows. Decoding already rejects malformed files on
// the wire; this guards sessions assembled in process.
func checkValues(path string, values attr.Values, report func(string, Rule, string, ...any)) {
	for id, value := range values {
		valuePath := fmt.Sprintf("%s.%s", path, id)
		if file, ok := value.AsFile(); ok {
			if err := file.Validate(); err != nil {
				report(valuePath, RuleFileValue, "%v", err)
			}
			continue
		}
		if rows, ok := value.AsRows(); ok {
			for i, row := range rows {
				checkValues(fmt.Sprintf("%s[%d]", valuePath, i), row, report)
			}
		}
	}
}

// ValidateSimulate checks the preview request shape: mode must be "api" and
// save must stay false so the engine never persists a speculative value.
func ValidateSimulate(req Simulate) []Violation {
	var out []Violation
	if req.Mode != SimulateMode {
		out = append(out, Violation{Path: "mode", Rule: RuleSimulate, Message: fmt.Sprintf("mode is %q, want %q", req.Mode, SimulateMode)})
	}
	if req.Save {
		out = append(out, Violation{Path: "save", Rule: RuleSimulate, Message: "simulate requests must not persist"})
	}
	if req.Goal == "" {
		out = append(out, Violation{Path: "goal", Rule: RuleSimulate, Message: "goal attribute is required"})
	}
	return out
}
