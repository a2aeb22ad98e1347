package attr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseData is the partial answer map a client submits back to the engine:
// attribute values keyed by id plus the reserved @parent field identifying
// the parent entity-instance path. Parent nil means the payload targets the
// root object; the key is then omitted entirely.
type ResponseData struct {
	Values Values
	Parent *string
}

// WithParent returns a copy of the payload addressed to the given parent
// entity-instance path.
func (r ResponseData) WithParent(path string) ResponseData {
	r.Parent = &path
	return r
}

// MarshalJSON flattens the attribute values and the @parent key into one
// object.
func (r ResponseData) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Values)+1)
	for id, value := range r.Values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("attr: marshal response value %q: %w", id, err)
		}
		out[string(id)] = raw
	}
	if r.Parent != nil {
		raw, err := json.Marshal(*r.Parent)
		if err != nil {
			return nil, err
		}
		out[ParentKey] = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the reserved @parent key from the attribute values.
func (r *ResponseData) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("attr: decode response data: %w", err)
	}

	out := ResponseData{}
	for key, raw := range fields {
		if key == ParentKey {
			var parent string
			if err := json.Unmarshal(raw, &parent); err != nil {
				return fmt.Errorf("attr: decode %s: %w", ParentKey, err)
			}
			out.Parent = &parent
			continue
		}
		if strings.HasPrefix(key, "@") {
			return fmt.Errorf("attr: unknown reserved key %q in response data", key)
		}
		var value Value
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("attr: decode response value %q: %w", key, err)
		}
		if out.Values == nil {
			out.Values = make(Values, len(fields))
		}
		out.Values[AttributeID(key)] = value
	}
	*r = out
	return nil
}

// EntityInstance is the stable identity of one row of a repeated entity.
type EntityInstance struct {
	ID string `json:"@id"`
}

// EntityValue is one fully identified row of entity data: the instance
// identity merged with the row's attribute values in a single flat object.
type EntityValue struct {
	ID     string
	Values Values
}

// MarshalJSON flattens the @id key alongside the attribute values.
func (e EntityValue) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Values)+1)
	for id, value := range e.Values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("attr: marshal entity value %q: %w", id, err)
		}
		out[string(id)] = raw
	}
	raw, err := json.Marshal(e.ID)
	if err != nil {
		return nil, err
	}
	out[InstanceIDKey] = raw
	return json.Marshal(out)
}

// UnmarshalJSON requires the @id key and collects the remaining keys as
// attribute values.
func (e *EntityValue) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("attr: decode entity value: %w", err)
	}

	idRaw, ok := fields[InstanceIDKey]
	if !ok {
		return fmt.Errorf("attr: entity value is missing %s", InstanceIDKey)
	}
	out := EntityValue{}
	if err := json.Unmarshal(idRaw, &out.ID); err != nil {
		return fmt.Errorf("attr: decode %s: %w", InstanceIDKey, err)
	}

	for key, raw := range fields {
		if key == InstanceIDKey {
			continue
		}
		var value Value
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("attr: decode entity value %q: %w", key, err)
		}
		if out.Values == nil {
			out.Values = make(Values, len(fields)-1)
		}
		out.Values[AttributeID(key)] = value
	}
	*e = out
	return nil
}
