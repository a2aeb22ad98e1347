package session

import (
	"strings"

	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/control"
)

// Status is the lifecycle state of a session. Complete and error are
// terminal; the engine stops producing new snapshots once either is reached.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// Known reports whether s is a declared status.
func (s Status) Known() bool {
	switch s {
	case StatusInProgress, StatusComplete, StatusError:
		return true
	default:
		return false
	}
}

// Terminal reports whether the engine will produce further snapshots.
func (s Status) Terminal() bool { return s == StatusComplete || s == StatusError }

// Step is one node of the session's navigation tree.
type Step struct {
	ID      attr.StepID  `json:"id"`
	Title   string       `json:"title"`
	Context attr.Context `json:"context"`
	// Current marks the step the screen belongs to. Exactly one step in the
	// whole tree carries it.
	Current bool `json:"current"`
	// Complete is true only when the step's own data is filled and every
	// child step is complete.
	Complete bool `json:"complete"`
	// Visited reflects navigation history, not presence: the current step
	// stays unvisited until the user moves on and comes back.
	Visited bool `json:"visited"`
	// Skipped steps are unreachable by user navigation regardless of
	// Visitable.
	Skipped bool `json:"skipped"`
	// Visitable false marks pure grouping nodes with no screen of their own.
	Visitable bool   `json:"visitable"`
	Steps     []Step `json:"steps,omitempty"`
}

// Screen is the hydrated, render-ready control list for the current step.
type Screen struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Controls control.RenderableList `json:"controls"`
}

// Progress reports elapsed interview time in seconds and an estimated
// completion percentage. The percentage is expected to be non-decreasing
// across a forward-only session but the shape does not enforce it.
type Progress struct {
	Time       float64 `json:"time"`
	Percentage float64 `json:"percentage"`
}

// State is one dynamic-attribute entry: an attribute whose value may require
// server recomputation. Entries are authoritative over any locally cached
// value for the same id.
type State struct {
	ID           attr.AttributeID   `json:"id"`
	Type         string             `json:"type"`
	Dependencies []attr.AttributeID `json:"dependencies,omitempty"`
	Value        attr.Value         `json:"value,omitzero"`
	// InstanceTemplate marks a placeholder for a not-yet-created entity
	// instance; its id template contains the literal @id marker.
	InstanceTemplate string `json:"instanceTemplate,omitempty"`
}

// IsPlaceholder reports whether the entry stands in for an entity instance
// that does not exist yet.
func (s State) IsPlaceholder() bool {
	return strings.Contains(s.InstanceTemplate, attr.InstanceIDKey)
}

// Session is the full engine-produced snapshot of an in-progress interview.
type Session struct {
	SessionID    attr.SessionID              `json:"sessionId"`
	Status       Status                      `json:"status"`
	Context      attr.Context                `json:"context"`
	Data         attr.ResponseData           `json:"data"`
	State        []State                     `json:"state,omitempty"`
	Steps        []Step                      `json:"steps"`
	Screen       Screen                      `json:"screen"`
	Progress     *Progress                   `json:"progress,omitempty"`
	RenderAt     int64                       `json:"renderAt,omitempty"`
	Explanations map[attr.AttributeID]string `json:"explanations,omitempty"`
	Locale       string                      `json:"locale,omitempty"`
}

// CurrentStep returns the step marked current, searching the whole tree.
func (s Session) CurrentStep() (Step, bool) {
	return findCurrent(s.Steps)
}

func findCurrent(steps []Step) (Step, bool) {
	for _, step := range steps {
		if step.Current {
			return step, true
		}
		if found, ok := findCurrent(step.Steps); ok {
			return found, ok
		}
	}
	return Step{}, false
}

// SimulateMode is the only request mode the simulate endpoint accepts.
const SimulateMode = "api"

// Simulate is the request shape used to preview a dynamic attribute's value
// without persisting anything.
type Simulate struct {
	Mode string           `json:"mode"`
	Save bool             `json:"save"`
	Goal attr.AttributeID `json:"goal"`
	Data attr.Values      `json:"data"`
}

// NewSimulate builds a preview request for the given goal attribute.
func NewSimulate(goal attr.AttributeID, data attr.Values) Simulate {
	return Simulate{Mode: SimulateMode, Save: false, Goal: goal, Data: data}
}
