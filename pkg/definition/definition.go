// Package definition loads and parses design-time interview documents: the
// authored screens and control trees an engine compiles into a runnable
// interview. Documents may be JSON or YAML; YAML is normalised through JSON
// so both share one strict decode path.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/control"
	"gopkg.in/yaml.v3"
)

// Definition is one authored interview: an ordered list of screens holding
// design-time control trees.
type Definition struct {
	ID      attr.InterviewID   `json:"id"`
	Title   string             `json:"title"`
	Version string             `json:"version,omitempty"`
	Screens []ScreenDefinition `json:"screens"`
}

// ScreenDefinition is one authored screen. Step links it to the navigation
// node it renders under.
type ScreenDefinition struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Step     attr.StepID         `json:"step,omitempty"`
	Controls control.ControlList `json:"controls"`
}

// Parse decodes a JSON or YAML definition document, sniffing the format.
// Callers holding a Document should use its Parse method, which reuses the
// format detected at load time.
func Parse(data []byte) (Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Definition{}, fmt.Errorf("definition: document is empty")
	}
	return parseAs(DetectFormat(data), data)
}

// parseAs is the single decode path. YAML payloads are converted to JSON
// first so the control union decoding and unknown-field rejection behave
// identically for both formats.
func parseAs(format Format, data []byte) (Definition, error) {
	payload := data
	if format == FormatYAML {
		normalised, err := yamlToJSON(data)
		if err != nil {
			return Definition{}, fmt.Errorf("definition: %w", err)
		}
		payload = normalised
	}

	var def Definition
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("definition: %w", err)
	}
	return def, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Validate checks the document-level invariants and every control tree.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition: id is required")
	}
	if len(d.Screens) == 0 {
		return fmt.Errorf("definition %s: no screens", d.ID)
	}

	screenIDs := make(map[string]bool, len(d.Screens))
	controlIDs := map[string]bool{}
	for i, screen := range d.Screens {
		if screen.ID == "" {
			return fmt.Errorf("definition %s: screens[%d] has no id", d.ID, i)
		}
		if screenIDs[screen.ID] {
			return fmt.Errorf("definition %s: duplicate screen id %q", d.ID, screen.ID)
		}
		screenIDs[screen.ID] = true

		for _, ctrl := range screen.Controls {
			if err := ctrl.Validate(); err != nil {
				return fmt.Errorf("definition %s: screen %s: %w", d.ID, screen.ID, err)
			}
			if err := collectControlIDs(ctrl, controlIDs); err != nil {
				return fmt.Errorf("definition %s: screen %s: %w", d.ID, screen.ID, err)
			}
		}
	}
	return nil
}

// collectControlIDs walks a control tree recording ids and rejecting
// duplicates. Control ids are unique across the whole definition, not just
// within one screen.
func collectControlIDs(ctrl control.Control, seen map[string]bool) error {
	id := ctrl.Meta().ID
	if id != "" {
		if seen[id] {
			return fmt.Errorf("duplicate control id %q", id)
		}
		seen[id] = true
	}

	for _, child := range childControls(ctrl) {
		if err := collectControlIDs(child, seen); err != nil {
			return err
		}
	}
	return nil
}

func childControls(ctrl control.Control) []control.Control {
	switch c := ctrl.(type) {
	case *control.EntityControl:
		return c.Template
	case control.EntityControl:
		return c.Template
	case *control.RepeatingContainer:
		return c.Controls
	case control.RepeatingContainer:
		return c.Controls
	case *control.CertaintyContainer:
		return append(append([]control.Control{}, c.Certain...), c.Uncertain...)
	case control.CertaintyContainer:
		return append(append([]control.Control{}, c.Certain...), c.Uncertain...)
	case *control.SwitchContainer:
		return append(append([]control.Control{}, c.OutcomeTrue...), c.OutcomeFalse...)
	case control.SwitchContainer:
		return append(append([]control.Control{}, c.OutcomeTrue...), c.OutcomeFalse...)
	default:
		return nil
	}
}
