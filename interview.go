// Package interview re-exports the data contracts for interview-driven form
// sessions: the session snapshot, the control union in its design-time and
// renderable shapes, condition expressions, and the attribute value model.
// The pkg subpackages hold the full surface; this facade covers the common
// entry points so most consumers import one package.
package interview

import (
	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/condition"
	"github.com/goliatone/go-interview/pkg/control"
	"github.com/goliatone/go-interview/pkg/definition"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/goliatone/go-interview/pkg/wire"
)

// Core wire types.
type (
	Session      = session.Session
	Step         = session.Step
	Screen       = session.Screen
	Simulate     = session.Simulate
	Violation    = session.Violation
	Control      = control.Control
	Renderable   = control.Renderable
	Expression   = condition.Expression
	Value        = attr.Value
	Values       = attr.Values
	ResponseData = attr.ResponseData
	Context      = attr.Context
	Definition   = definition.Definition
)

// Error types for errors.As at the boundary.
type (
	DecodeError     = wire.DecodeError
	ValidationError = session.ValidationError
)

// DecodeSession parses a full engine snapshot with strict field checking.
func DecodeSession(data []byte) (Session, error) {
	return wire.DecodeSession(data)
}

// ValidateSession checks a decoded snapshot against the session invariants.
func ValidateSession(s Session) []Violation {
	return session.Validate(s)
}

// ValidSession returns nil or a *ValidationError carrying every violation.
func ValidSession(s Session) error {
	return session.Valid(s)
}

// UnmarshalControl parses one design-time control definition.
func UnmarshalControl(data []byte) (Control, error) {
	return wire.DecodeControl(data)
}

// UnmarshalRenderable parses one hydrated control.
func UnmarshalRenderable(data []byte) (Renderable, error) {
	return wire.DecodeRenderable(data)
}

// ParseDefinition decodes a JSON or YAML interview definition document.
func ParseDefinition(data []byte) (Definition, error) {
	return definition.Parse(data)
}
