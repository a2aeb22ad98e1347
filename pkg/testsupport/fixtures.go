// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Goldens are refreshed by running the tests with
// UPDATE_GOLDENS set.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-interview/pkg/control"
	"github.com/goliatone/go-interview/pkg/definition"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/goliatone/go-interview/pkg/wire"
)

// MustLoadSession reads a JSON fixture into a Session, failing the test on
// any decode error.
func MustLoadSession(t *testing.T, path string) session.Session {
	t.Helper()

	s, err := LoadSession(path)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return s
}

// LoadSession reads a JSON fixture into a Session, returning an error for
// callers managing setup outside of *testing.T.
func LoadSession(path string) (session.Session, error) {
	if path == "" {
		return session.Session{}, errors.New("testsupport: session path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Session{}, fmt.Errorf("testsupport: read session: %w", err)
	}
	s, err := wire.DecodeSession(data)
	if err != nil {
		return session.Session{}, fmt.Errorf("testsupport: decode session: %w", err)
	}
	return s, nil
}

// MustLoadControl reads a JSON fixture into a design-time control.
func MustLoadControl(t *testing.T, path string) control.Control {
	t.Helper()

	ctrl, err := wire.DecodeControl(MustReadGolden(t, path))
	if err != nil {
		t.Fatalf("decode control: %v", err)
	}
	return ctrl
}

// MustLoadDefinition reads a JSON or YAML fixture into a Definition.
func MustLoadDefinition(t *testing.T, path string) definition.Definition {
	t.Helper()

	def, err := definition.Parse(MustReadGolden(t, path))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	return def
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
