package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/control"
	"github.com/goliatone/go-interview/pkg/session"
)

// DecodeError reports that a payload failed to parse. Payload names the
// wire shape that was being decoded, Err carries the underlying cause.
type DecodeError struct {
	Payload string
	Err     error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Payload, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

var errTrailingData = errors.New("data after top-level value")

// strict decodes data into v rejecting unknown fields and trailing content.
func strict(payload string, data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Payload: payload, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &DecodeError{Payload: payload, Err: errTrailingData}
	}
	return nil
}

// DecodeSession parses a full engine snapshot. The result is structurally
// sound but not yet checked against the session invariants; run
// session.Valid on it for that.
func DecodeSession(data []byte) (session.Session, error) {
	var s session.Session
	if err := strict("session", data, &s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// DecodeControl parses one design-time control definition.
func DecodeControl(data []byte) (control.Control, error) {
	ctrl, err := control.Unmarshal(data)
	if err != nil {
		return nil, &DecodeError{Payload: "control", Err: err}
	}
	return ctrl, nil
}

// DecodeRenderable parses one hydrated control as the engine sends it.
func DecodeRenderable(data []byte) (control.Renderable, error) {
	ctrl, err := control.UnmarshalRenderable(data)
	if err != nil {
		return nil, &DecodeError{Payload: "renderable control", Err: err}
	}
	return ctrl, nil
}

// DecodeResponseData parses the answer map a client submits back.
func DecodeResponseData(data []byte) (attr.ResponseData, error) {
	var rd attr.ResponseData
	if err := strict("response data", data, &rd); err != nil {
		return attr.ResponseData{}, err
	}
	return rd, nil
}

// DecodeSimulate parses a dynamic-attribute preview request and checks its
// fixed fields.
func DecodeSimulate(data []byte) (session.Simulate, error) {
	var req session.Simulate
	if err := strict("simulate request", data, &req); err != nil {
		return session.Simulate{}, err
	}
	if violations := session.ValidateSimulate(req); len(violations) > 0 {
		return session.Simulate{}, &DecodeError{
			Payload: "simulate request",
			Err:     &session.ValidationError{Violations: violations},
		}
	}
	return req, nil
}
