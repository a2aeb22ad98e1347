package control

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnknownKindError reports a payload whose "type" tag is not part of the
// control union.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("control: unknown control type %q", e.Kind)
}

// decodeStrict rejects any field the target kind does not declare, keeping
// design and renderable payloads from drifting into each other.
func decodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func probeKind(data []byte) (Kind, error) {
	var probe struct {
		Kind Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("control: decode type tag: %w", err)
	}
	if !probe.Kind.Known() {
		return "", &UnknownKindError{Kind: string(probe.Kind)}
	}
	return probe.Kind, nil
}

// Unmarshal decodes a design-time control, dispatching on the "type" tag.
// Unknown tags and fields that do not belong to the tagged kind are decode
// errors.
func Unmarshal(data []byte) (Control, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}

	decode := func(dst Control) (Control, error) {
		if err := decodeStrict(data, dst); err != nil {
			return nil, fmt.Errorf("control: decode %s: %w", kind, err)
		}
		return dst, nil
	}

	switch kind {
	case KindBoolean:
		return decode(&BooleanControl{})
	case KindCurrency:
		return decode(&CurrencyControl{})
	case KindDate:
		return decode(&DateControl{})
	case KindTime:
		return decode(&TimeControl{})
	case KindDateTime:
		return decode(&DateTimeControl{})
	case KindOptions:
		return decode(&OptionsControl{})
	case KindFile:
		return decode(&FileControl{})
	case KindImage:
		return decode(&ImageControl{})
	case KindNumberOfInstances:
		return decode(&NumberOfInstancesControl{})
	case KindText:
		return decode(&TextControl{})
	case KindTypography:
		return decode(&TypographyControl{})
	case KindEntity:
		return decode(&EntityControl{})
	case KindRepeating:
		return decode(&RepeatingContainer{})
	case KindCertainty:
		return decode(&CertaintyContainer{})
	case KindSwitch:
		return decode(&SwitchContainer{})
	default:
		return nil, &UnknownKindError{Kind: string(kind)}
	}
}

// UnmarshalRenderable decodes a hydrated control, dispatching on the "type"
// tag.
func UnmarshalRenderable(data []byte) (Renderable, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}

	decode := func(dst Renderable) (Renderable, error) {
		if err := decodeStrict(data, dst); err != nil {
			return nil, fmt.Errorf("control: decode renderable %s: %w", kind, err)
		}
		return dst, nil
	}

	switch kind {
	case KindBoolean:
		return decode(&RenderableBoolean{})
	case KindCurrency:
		return decode(&RenderableCurrency{})
	case KindDate:
		return decode(&RenderableDate{})
	case KindTime:
		return decode(&RenderableTime{})
	case KindDateTime:
		return decode(&RenderableDateTime{})
	case KindOptions:
		return decode(&RenderableOptions{})
	case KindFile:
		return decode(&RenderableFile{})
	case KindImage:
		return decode(&RenderableImage{})
	case KindNumberOfInstances:
		return decode(&RenderableNumberOfInstances{})
	case KindText:
		return decode(&RenderableText{})
	case KindTypography:
		return decode(&RenderableTypography{})
	case KindEntity:
		return decode(&RenderableEntity{})
	case KindRepeating:
		return decode(&RenderableRepeating{})
	case KindCertainty:
		return decode(&RenderableCertainty{})
	case KindSwitch:
		return decode(&RenderableSwitch{})
	default:
		return nil, &UnknownKindError{Kind: string(kind)}
	}
}

// ControlList is a JSON array of design-time controls with per-element tag
// dispatch.
type ControlList []Control

// UnmarshalJSON decodes each element through Unmarshal.
func (l *ControlList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("control: decode control list: %w", err)
	}
	out := make(ControlList, 0, len(raws))
	for i, raw := range raws {
		ctrl, err := Unmarshal(raw)
		if err != nil {
			return fmt.Errorf("control: list element %d: %w", i, err)
		}
		out = append(out, ctrl)
	}
	*l = out
	return nil
}

// RenderableList is a JSON array of hydrated controls with per-element tag
// dispatch.
type RenderableList []Renderable

// UnmarshalJSON decodes each element through UnmarshalRenderable.
func (l *RenderableList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("control: decode renderable list: %w", err)
	}
	out := make(RenderableList, 0, len(raws))
	for i, raw := range raws {
		ctrl, err := UnmarshalRenderable(raw)
		if err != nil {
			return fmt.Errorf("control: list element %d: %w", i, err)
		}
		out = append(out, ctrl)
	}
	*l = out
	return nil
}
