package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-interview/pkg/control"
)

const sessionFixture = `{
  "sessionId": "sess-7",
  "status": "complete",
  "context": {"entity": "global"},
  "data": {"done": true},
  "steps": [
    {"id": "s1", "title": "Only", "context": {"entity": "global"},
     "current": true, "complete": true, "visited": true,
     "skipped": false, "visitable": true}
  ],
  "screen": {"id": "scr", "title": "Only", "controls": []}
}`

func writeFixture(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestMustLoadSession(t *testing.T) {
	path := writeFixture(t, "session.json", sessionFixture)
	s := MustLoadSession(t, path)
	if s.SessionID != "sess-7" {
		t.Fatalf("session id = %q", s.SessionID)
	}

	if _, err := LoadSession(""); err == nil {
		t.Fatal("empty path must fail")
	}
	if _, err := LoadSession(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestMustLoadControl(t *testing.T) {
	path := writeFixture(t, "control.json", `{"id": "q1", "type": "text", "attribute": "name"}`)
	ctrl := MustLoadControl(t, path)
	if _, ok := ctrl.(*control.TextControl); !ok {
		t.Fatalf("control is %T", ctrl)
	}
}

func TestMustLoadDefinition(t *testing.T) {
	path := writeFixture(t, "definition.yaml",
		"id: d1\ntitle: Demo\nscreens:\n  - id: s1\n    title: One\n    controls: []\n")
	def := MustLoadDefinition(t, path)
	if def.ID != "d1" {
		t.Fatalf("definition id = %q", def.ID)
	}
}

func TestGoldenWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goldens", "value.json")

	if WriteMaybeGolden(t, path, []byte("{}")) {
		t.Fatal("goldens must not be written without UPDATE_GOLDENS")
	}

	t.Setenv("UPDATE_GOLDENS", "1")
	if !WriteMaybeGolden(t, path, []byte(`{"a": 1}`)) {
		t.Fatal("golden should be written with UPDATE_GOLDENS set")
	}
	if got := string(MustReadGolden(t, path)); got != `{"a": 1}` {
		t.Fatalf("golden content = %q", got)
	}

	WriteGolden(t, path, map[string]int{"a": 2})
	if diff := CompareGolden("{\n  \"a\": 2\n}", string(MustReadGolden(t, path))); diff != "" {
		t.Fatalf("golden diff:\n%s", diff)
	}
}
