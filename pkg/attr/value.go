package attr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind string

const (
	// ValueAbsent is the zero Value: the attribute was never touched. It has
	// no wire representation; senders must omit the attribute instead.
	ValueAbsent ValueKind = ""
	// ValueNull marks an attribute that was reviewed but left unanswered.
	ValueNull ValueKind = "null"
	// ValueString holds a string scalar.
	ValueString ValueKind = "string"
	// ValueNumber holds a numeric scalar.
	ValueNumber ValueKind = "number"
	// ValueBool holds a boolean scalar.
	ValueBool ValueKind = "boolean"
	// ValueFile holds a FileValue.
	ValueFile ValueKind = "file"
	// ValueRows holds nested entity rows.
	ValueRows ValueKind = "rows"
)

// Value is the tagged union of shapes an attribute value can take on the
// wire: a scalar, an explicit null, a file reference set, or nested entity
// rows. The zero Value is "absent" and cannot be marshalled; the distinction
// between absent and null is load bearing for tri-state booleans, where an
// omitted answer means "needs answer" and null means "reviewed, unanswered".
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	file FileValue
	rows []Values
}

// Values maps attribute ids to their answered values for one entity instance.
type Values map[AttributeID]Value

// String wraps a string scalar.
func String(s string) Value { return Value{kind: ValueString, str: s} }

// Number wraps a numeric scalar.
func Number(f float64) Value { return Value{kind: ValueNumber, num: f} }

// Bool wraps a boolean scalar.
func Bool(b bool) Value { return Value{kind: ValueBool, b: b} }

// Null returns the explicit-null value.
func Null() Value { return Value{kind: ValueNull} }

// File wraps a set of storage references, validating the data:id= prefix on
// every entry.
func File(refs ...string) (Value, error) {
	fv, err := NewFileValue(refs...)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: ValueFile, file: fv}, nil
}

// Rows wraps nested entity rows.
func Rows(rows ...Values) Value {
	return Value{kind: ValueRows, rows: rows}
}

// Kind reports the variant held by the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v.kind == ValueAbsent }

// AsString returns the string scalar, if held.
func (v Value) AsString() (string, bool) { return v.str, v.kind == ValueString }

// AsNumber returns the numeric scalar, if held.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == ValueNumber }

// AsBool returns the boolean scalar, if held.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == ValueBool }

// AsFile returns the file value, if held.
func (v Value) AsFile() (FileValue, bool) { return v.file, v.kind == ValueFile }

// AsRows returns the nested entity rows, if held.
func (v Value) AsRows() ([]Values, bool) { return v.rows, v.kind == ValueRows }

// Scalar returns the held scalar as an untyped value (string, float64, bool,
// or nil for explicit null). The second result is false for file and row
// variants and for absent values.
func (v Value) Scalar() (any, bool) {
	switch v.kind {
	case ValueString:
		return v.str, true
	case ValueNumber:
		return v.num, true
	case ValueBool:
		return v.b, true
	case ValueNull:
		return nil, true
	default:
		return nil, false
	}
}

var errAbsentValue = errors.New("attr: absent value has no wire representation")

// MarshalJSON encodes the underlying variant without a wrapper object, except
// for file values which keep their tagged {type, value} shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueAbsent:
		return nil, errAbsentValue
	case ValueNull:
		return []byte("null"), nil
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueBool:
		return json.Marshal(v.b)
	case ValueFile:
		return json.Marshal(v.file)
	case ValueRows:
		if v.rows == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.rows)
	default:
		return nil, fmt.Errorf("attr: unknown value kind %q", v.kind)
	}
}

// UnmarshalJSON decodes any of the union variants. Shapes outside the union
// (arrays of scalars, objects without the file tag) are decode errors rather
// than passthroughs.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("attr: empty value payload")
	}

	switch trimmed[0] {
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return fmt.Errorf("attr: malformed literal %q", trimmed)
		}
		*v = Null()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("attr: decode string value: %w", err)
		}
		*v = String(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return fmt.Errorf("attr: decode boolean value: %w", err)
		}
		*v = Bool(b)
		return nil
	case '[':
		var rows []Values
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return fmt.Errorf("attr: decode entity rows: %w", err)
		}
		*v = Value{kind: ValueRows, rows: rows}
		return nil
	case '{':
		var fv FileValue
		if err := strictUnmarshal(trimmed, &fv); err != nil {
			return fmt.Errorf("attr: decode file value: %w", err)
		}
		if err := fv.Validate(); err != nil {
			return err
		}
		*v = Value{kind: ValueFile, file: fv}
		return nil
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return fmt.Errorf("attr: decode numeric value: %w", err)
		}
		*v = Number(f)
		return nil
	}
}

// strictUnmarshal decodes JSON rejecting unknown object keys.
func strictUnmarshal(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// FileValue is the tagged wire shape for uploaded-file attributes. Every
// entry references external file storage via the data:id= prefix; the
// optional ";base64,<filename>" suffix carries the original file name.
type FileValue struct {
	Type  string   `json:"type"`
	Value []string `json:"value"`
}

// FileValueTag is the discriminant FileValue.Type must carry.
const FileValueTag = "file"

// NewFileValue builds a FileValue, rejecting entries without the data:id=
// prefix.
func NewFileValue(refs ...string) (FileValue, error) {
	fv := FileValue{Type: FileValueTag, Value: refs}
	if err := fv.Validate(); err != nil {
		return FileValue{}, err
	}
	return fv, nil
}

// Validate checks both the discriminant tag and the prefix of every entry. A
// value with the right tag but a malformed entry is a type error, never
// coerced.
func (f FileValue) Validate() error {
	if f.Type != FileValueTag {
		return fmt.Errorf("attr: file value tag is %q, want %q", f.Type, FileValueTag)
	}
	for i, ref := range f.Value {
		if !strings.HasPrefix(ref, FileRefPrefix) {
			return fmt.Errorf("attr: file value entry %d (%q) is missing the %s prefix", i, ref, FileRefPrefix)
		}
	}
	return nil
}

// Filename extracts the original file name from a reference, when the
// ;base64,<name> suffix is present.
func Filename(ref string) (string, bool) {
	rest, ok := strings.CutPrefix(ref, FileRefPrefix)
	if !ok {
		return "", false
	}
	_, name, ok := strings.Cut(rest, ";base64,")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// IsFileValue reports whether v is a well formed file attribute value. It
// accepts the typed shapes used in this package as well as the raw
// map[string]any produced by generic JSON decoding; anything else is false.
func IsFileValue(v any) bool {
	switch val := v.(type) {
	case FileValue:
		return val.Validate() == nil
	case *FileValue:
		return val != nil && val.Validate() == nil
	case Value:
		f, ok := val.AsFile()
		return ok && f.Validate() == nil
	case *Value:
		if val == nil {
			return false
		}
		f, ok := val.AsFile()
		return ok && f.Validate() == nil
	case map[string]any:
		if val["type"] != FileValueTag {
			return false
		}
		entries, ok := val["value"].([]any)
		if !ok {
			return false
		}
		for _, entry := range entries {
			ref, ok := entry.(string)
			if !ok || !strings.HasPrefix(ref, FileRefPrefix) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
