package interview

import (
	"errors"
	"testing"
)

func TestFacadeDecodeAndValidate(t *testing.T) {
	raw := []byte(`{
	  "sessionId": "sess-1",
	  "status": "in-progress",
	  "context": {"entity": "global"},
	  "data": {"name": "Ada"},
	  "steps": [
	    {"id": "s1", "title": "Only", "context": {"entity": "global"},
	     "current": true, "complete": false, "visited": false,
	     "skipped": false, "visitable": true}
	  ],
	  "screen": {"id": "scr", "title": "Only", "controls": [
	    {"id": "q1", "type": "text", "attribute": "name", "value": "Ada"}
	  ]}
	}`)

	s, err := DecodeSession(raw)
	if err != nil {
		t.Fatalf("DecodeSession: %v", err)
	}
	if violations := ValidateSession(s); len(violations) != 0 {
		t.Fatalf("violations: %v", violations)
	}

	s.Steps[0].Current = false
	err = ValidSession(s)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
}

func TestFacadeControlDecoding(t *testing.T) {
	ctrl, err := UnmarshalControl([]byte(`{"id": "q1", "type": "boolean", "attribute": "married"}`))
	if err != nil {
		t.Fatalf("UnmarshalControl: %v", err)
	}
	if ctrl.Meta().ID != "q1" {
		t.Fatalf("meta: %+v", ctrl.Meta())
	}

	_, err = UnmarshalRenderable([]byte(`{"id": "q1", "type": "boolean", "attribute": "married", "loading": "yes"}`))
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("want *DecodeError, got %v", err)
	}
}

func TestFacadeParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte("id: d1\ntitle: Demo\nscreens:\n  - id: s1\n    title: One\n    controls: []\n"))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	if def.ID != "d1" || len(def.Screens) != 1 {
		t.Fatalf("definition: %+v", def)
	}
}
