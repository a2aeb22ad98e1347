package control

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-interview/pkg/attr"
)

// Kind is the discriminant tag of the control union.
type Kind string

const (
	KindBoolean           Kind = "boolean"
	KindCurrency          Kind = "currency"
	KindDate              Kind = "date"
	KindTime              Kind = "time"
	KindDateTime          Kind = "datetime"
	KindOptions           Kind = "options"
	KindFile              Kind = "file"
	KindImage             Kind = "image"
	KindNumberOfInstances Kind = "number_of_instances"
	KindText              Kind = "text"
	KindTypography        Kind = "typography"
	KindEntity            Kind = "entity"
	KindRepeating         Kind = "repeating_container"
	KindCertainty         Kind = "certainty_container"
	KindSwitch            Kind = "switch_container"
)

// Kinds returns every control tag in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBoolean, KindCurrency, KindDate, KindTime, KindDateTime,
		KindOptions, KindFile, KindImage, KindNumberOfInstances, KindText,
		KindTypography, KindEntity, KindRepeating, KindCertainty, KindSwitch,
	}
}

// Known reports whether k is a declared control tag.
func (k Kind) Known() bool {
	switch k {
	case KindBoolean, KindCurrency, KindDate, KindTime, KindDateTime,
		KindOptions, KindFile, KindImage, KindNumberOfInstances, KindText,
		KindTypography, KindEntity, KindRepeating, KindCertainty, KindSwitch:
		return true
	default:
		return false
	}
}

// Container reports whether k is a structural (non leaf) kind.
func (k Kind) Container() bool {
	return k == KindEntity || k == KindRepeating || k == KindCertainty || k == KindSwitch
}

// Base carries the fields shared by every control kind. Attribute binds the
// control to an answer slot; display-only kinds leave it empty.
type Base struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"type"`
	Attribute attr.AttributeID `json:"attribute,omitempty"`
	Version   int              `json:"version,omitempty"`
}

// Meta returns the shared control fields.
func (b Base) Meta() Base { return b }

// validate checks the shared fields against the kind the wrapping struct
// declares.
func (b Base) validate(want Kind) error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("control: %s control is missing an id", want)
	}
	if b.Kind != want {
		return fmt.Errorf("control %s: tag is %q, want %q", b.ID, b.Kind, want)
	}
	return nil
}

// Control is the sealed design-time union. Only the control structs declared
// in this package implement it.
type Control interface {
	Meta() Base
	Validate() error
	controlNode()
}

// Renderable is the sealed hydrated union consumed by a live screen.
type Renderable interface {
	Meta() Base
	Validate() error
	renderableNode()
}

// Runtime carries the hydration-only state the engine may attach to any
// renderable control while a dynamic attribute is being recomputed.
type Runtime struct {
	Loading           bool               `json:"loading,omitempty"`
	DynamicAttributes []attr.AttributeID `json:"dynamicAttributes,omitempty"`
}
