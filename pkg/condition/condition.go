// Package condition models the recursive boolean expression trees that
// decide branch visibility in an interview. Only the wire shape is fixed
// here; evaluation semantics belong to the external interview engine.
package condition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Type enumerates the supported expression operators. Unknown operators fail
// validation; they are never passed through.
type Type string

const (
	Equals            Type = "equals"
	NotEquals         Type = "not-equals"
	And               Type = "and"
	Or                Type = "or"
	LessThan          Type = "less-than"
	LessThanEquals    Type = "less-than-equals"
	GreaterThan       Type = "greater-than"
	GreaterThanEquals Type = "greater-than-equals"
)

// Known reports whether t is one of the supported operators.
func (t Type) Known() bool {
	switch t {
	case Equals, NotEquals, And, Or, LessThan, LessThanEquals, GreaterThan, GreaterThanEquals:
		return true
	default:
		return false
	}
}

// Boolean reports whether t composes sub-expressions rather than comparing
// two leaves.
func (t Type) Boolean() bool { return t == And || t == Or }

// ValueKind discriminates the two leaf flavours.
type ValueKind string

const (
	// KindValue marks a literal operand.
	KindValue ValueKind = "value"
	// KindAttribute marks an operand read from an attribute.
	KindAttribute ValueKind = "attribute"
)

// Value is a comparison leaf: either a literal scalar or a reference to an
// attribute. Exactly one of the two is meaningful, keyed by Kind; a literal
// null is a valid operand and is kept distinct from an absent field.
type Value struct {
	Kind        ValueKind
	Value       any
	AttributeID string
}

// Literal builds a literal operand. v must be a scalar or nil.
func Literal(v any) Value { return Value{Kind: KindValue, Value: v} }

// Attribute builds an attribute-reference operand.
func Attribute(id string) Value { return Value{Kind: KindAttribute, AttributeID: id} }

func (Value) isElement() {}

// Validate enforces the exactly-one-operand rule.
func (v Value) Validate() error {
	switch v.Kind {
	case KindValue:
		if v.AttributeID != "" {
			return fmt.Errorf("condition: literal operand must not reference attribute %q", v.AttributeID)
		}
		switch v.Value.(type) {
		case nil, string, bool, float64, int, int64:
			return nil
		default:
			return fmt.Errorf("condition: literal operand must be a scalar, got %T", v.Value)
		}
	case KindAttribute:
		if v.AttributeID == "" {
			return errors.New("condition: attribute operand is missing attributeId")
		}
		if v.Value != nil {
			return errors.New("condition: attribute operand must not carry a literal value")
		}
		return nil
	default:
		return fmt.Errorf("condition: unknown operand kind %q", v.Kind)
	}
}

// MarshalJSON emits the operand with only its meaningful field: literal
// operands always carry "value" (null included), attribute operands always
// carry "attributeId".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindValue:
		return json.Marshal(struct {
			Kind  ValueKind `json:"type"`
			Value any       `json:"value"`
		}{v.Kind, v.Value})
	case KindAttribute:
		return json.Marshal(struct {
			Kind        ValueKind `json:"type"`
			AttributeID string    `json:"attributeId"`
		}{v.Kind, v.AttributeID})
	default:
		return nil, fmt.Errorf("condition: unknown operand kind %q", v.Kind)
	}
}

// UnmarshalJSON decodes an operand, rejecting payloads where the operand
// fields contradict the discriminant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var wire struct {
		Kind        ValueKind        `json:"type"`
		Value       *json.RawMessage `json:"value"`
		AttributeID *string          `json:"attributeId"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("condition: decode operand: %w", err)
	}

	out := Value{Kind: wire.Kind}
	switch wire.Kind {
	case KindValue:
		if wire.AttributeID != nil && *wire.AttributeID != "" {
			return errors.New("condition: literal operand carries an attributeId")
		}
		if wire.Value != nil {
			var scalar any
			if err := json.Unmarshal(*wire.Value, &scalar); err != nil {
				return fmt.Errorf("condition: decode literal: %w", err)
			}
			switch scalar.(type) {
			case nil, string, bool, float64:
			default:
				return fmt.Errorf("condition: literal operand must be a scalar, got %T", scalar)
			}
			out.Value = scalar
		}
	case KindAttribute:
		if wire.AttributeID == nil || *wire.AttributeID == "" {
			return errors.New("condition: attribute operand is missing attributeId")
		}
		if wire.Value != nil && !bytes.Equal(bytes.TrimSpace(*wire.Value), []byte("null")) {
			return errors.New("condition: attribute operand carries a literal value")
		}
		out.AttributeID = *wire.AttributeID
	default:
		return fmt.Errorf("condition: unknown operand kind %q", wire.Kind)
	}
	*v = out
	return nil
}

// Element is either a Value leaf or a nested Expression. The set is sealed.
type Element interface {
	isElement()
}

// Expression is one node of the condition tree: an operator applied to an
// ordered list of elements.
type Expression struct {
	Type     Type      `json:"type"`
	Elements []Element `json:"elements"`
}

func (Expression) isElement() {}

// UnmarshalJSON decodes the node and dispatches each element on its "type"
// discriminant: operand kinds become Value leaves, operator names become
// nested expressions, anything else is a decode error. Element order and
// nesting depth are preserved exactly.
func (e *Expression) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type     Type              `json:"type"`
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("condition: decode expression: %w", err)
	}
	if !wire.Type.Known() {
		return fmt.Errorf("condition: unknown expression type %q", wire.Type)
	}

	out := Expression{Type: wire.Type}
	for i, raw := range wire.Elements {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("condition: decode element %d: %w", i, err)
		}
		switch {
		case probe.Type == string(KindValue) || probe.Type == string(KindAttribute):
			var leaf Value
			if err := json.Unmarshal(raw, &leaf); err != nil {
				return fmt.Errorf("condition: element %d: %w", i, err)
			}
			out.Elements = append(out.Elements, leaf)
		case Type(probe.Type).Known():
			var nested Expression
			if err := json.Unmarshal(raw, &nested); err != nil {
				return fmt.Errorf("condition: element %d: %w", i, err)
			}
			out.Elements = append(out.Elements, nested)
		default:
			return fmt.Errorf("condition: element %d has unknown type %q", i, probe.Type)
		}
	}
	*e = out
	return nil
}

// Validate checks the structural rules: and/or compose sub-expressions,
// comparison operators take exactly two operand leaves, and every leaf is
// well formed.
func (e Expression) Validate() error {
	if !e.Type.Known() {
		return fmt.Errorf("condition: unknown expression type %q", e.Type)
	}

	if e.Type.Boolean() {
		if len(e.Elements) == 0 {
			return fmt.Errorf("condition: %s expression has no sub-expressions", e.Type)
		}
		for i, el := range e.Elements {
			nested, ok := el.(Expression)
			if !ok {
				return fmt.Errorf("condition: %s element %d must be an expression, got %T", e.Type, i, el)
			}
			if err := nested.Validate(); err != nil {
				return err
			}
		}
		return nil
	}

	if len(e.Elements) != 2 {
		return fmt.Errorf("condition: %s expression needs two operands, got %d", e.Type, len(e.Elements))
	}
	for i, el := range e.Elements {
		leaf, ok := el.(Value)
		if !ok {
			return fmt.Errorf("condition: %s operand %d must be a value, got %T", e.Type, i, el)
		}
		if err := leaf.Validate(); err != nil {
			return err
		}
	}
	return nil
}
