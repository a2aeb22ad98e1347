package wire_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-interview/pkg/control"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/goliatone/go-interview/pkg/testsupport"
	"github.com/goliatone/go-interview/pkg/wire"
)

// One golden per control kind, named by its wire tag. Each golden must
// decode, validate, and survive a re-encode without drift.
func TestRenderableGoldens(t *testing.T) {
	for _, kind := range control.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			path := filepath.Join("testdata", "renderable_"+string(kind)+".json")
			raw := testsupport.MustReadGolden(t, path)

			ctrl, err := wire.DecodeRenderable(raw)
			if err != nil {
				t.Fatalf("decode golden: %v", err)
			}
			if ctrl.Meta().Kind != kind {
				t.Fatalf("decoded kind = %q, want %q", ctrl.Meta().Kind, kind)
			}
			if err := ctrl.Validate(); err != nil {
				t.Fatalf("golden must validate: %v", err)
			}

			encoded, err := json.MarshalIndent(ctrl, "", "  ")
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if testsupport.WriteMaybeGolden(t, path, append(encoded, '\n')) {
				return
			}

			var want, got map[string]any
			if err := json.Unmarshal(raw, &want); err != nil {
				t.Fatalf("golden is not JSON: %v", err)
			}
			if err := json.Unmarshal(encoded, &got); err != nil {
				t.Fatalf("re-encoded control is not JSON: %v", err)
			}
			if diff := testsupport.CompareGolden(want, got); diff != "" {
				t.Fatalf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionGolden(t *testing.T) {
	path := filepath.Join("testdata", "session.json")
	s := testsupport.MustLoadSession(t, path)

	if violations := session.Validate(s); len(violations) != 0 {
		t.Fatalf("violations: %v", violations)
	}
	testsupport.WriteGolden(t, path, s)

	encoded, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var want, got map[string]any
	if err := json.Unmarshal(testsupport.MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("golden is not JSON: %v", err)
	}
	if err := json.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("re-encoded session is not JSON: %v", err)
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestControlGolden(t *testing.T) {
	ctrl := testsupport.MustLoadControl(t, filepath.Join("testdata", "control_entity.json"))

	entity, ok := ctrl.(*control.EntityControl)
	if !ok {
		t.Fatalf("control is %T, want *control.EntityControl", ctrl)
	}
	if len(entity.Template) != 2 {
		t.Fatalf("template length %d", len(entity.Template))
	}
	if err := ctrl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
