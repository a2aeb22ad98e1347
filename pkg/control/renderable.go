package control

import (
	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/condition"
)

// CertaintyBranch names the side a hydrated certainty container took.
type CertaintyBranch string

const (
	BranchCertain   CertaintyBranch = "certain"
	BranchUncertain CertaintyBranch = "uncertain"
)

// SwitchBranch names the outcome a hydrated switch container took.
type SwitchBranch string

const (
	BranchTrue  SwitchBranch = "true"
	BranchFalse SwitchBranch = "false"
)

// EntityRow is one hydrated instance of an entity control's template.
type EntityRow struct {
	ID       string         `json:"@id"`
	Controls RenderableList `json:"controls"`
}

// RenderableBoolean is the hydrated tri-state checkbox. An absent value means
// the attribute still needs an answer; an explicit null means reviewed but
// unanswered. The two must never be conflated.
type RenderableBoolean struct {
	Base
	Runtime
	Label    string     `json:"label,omitempty"`
	Required bool       `json:"required,omitempty"`
	Default  *bool      `json:"default,omitempty"`
	Value    attr.Value `json:"value,omitzero"`
}

// RenderableCurrency is the hydrated money input.
type RenderableCurrency struct {
	Base
	Runtime
	Label    string     `json:"label,omitempty"`
	Required bool       `json:"required,omitempty"`
	Symbol   string     `json:"symbol,omitempty"`
	Min      *float64   `json:"min,omitempty"`
	Max      *float64   `json:"max,omitempty"`
	Value    attr.Value `json:"value,omitzero"`
}

// RenderableDate is the hydrated date picker. The engine has resolved any
// "now" or attribute-reference bound to a concrete yyyy-MM-dd literal.
type RenderableDate struct {
	Base
	Runtime
	Label    string     `json:"label,omitempty"`
	Required bool       `json:"required,omitempty"`
	Min      string     `json:"min,omitempty"`
	Max      string     `json:"max,omitempty"`
	Value    attr.Value `json:"value,omitzero"`
}

// RenderableTime is the hydrated time picker.
type RenderableTime struct {
	Base
	Runtime
	Label            string     `json:"label,omitempty"`
	Required         bool       `json:"required,omitempty"`
	Min              string     `json:"min,omitempty"`
	Max              string     `json:"max,omitempty"`
	MinutesIncrement int        `json:"minutes_increment,omitempty"`
	AmPmFormat       bool       `json:"amPmFormat,omitempty"`
	Value            attr.Value `json:"value,omitzero"`
}

// RenderableDateTime is the hydrated combined date and time picker.
type RenderableDateTime struct {
	Base
	Runtime
	Label            string     `json:"label,omitempty"`
	Required         bool       `json:"required,omitempty"`
	DateMin          string     `json:"date_min,omitempty"`
	DateMax          string     `json:"date_max,omitempty"`
	TimeMin          string     `json:"time_min,omitempty"`
	TimeMax          string     `json:"time_max,omitempty"`
	MinutesIncrement int        `json:"minutes_increment,omitempty"`
	AmPmFormat       bool       `json:"amPmFormat,omitempty"`
	Value            attr.Value `json:"value,omitzero"`
}

// RenderableOptions is the hydrated single select. enum_id has been resolved
// into a concrete option list by the engine and is absent here.
type RenderableOptions struct {
	Base
	Runtime
	Label      string     `json:"label,omitempty"`
	Required   bool       `json:"required,omitempty"`
	Options    []Option   `json:"options,omitempty"`
	AllowOther bool       `json:"allow_other,omitempty"`
	Default    any        `json:"default,omitempty"`
	Value      attr.Value `json:"value,omitzero"`
}

// RenderableFile is the hydrated file upload.
type RenderableFile struct {
	Base
	Runtime
	Label    string     `json:"label,omitempty"`
	Required bool       `json:"required,omitempty"`
	Max      *int       `json:"max,omitempty"`
	FileType string     `json:"file_type,omitempty"`
	MaxSize  *float64   `json:"max_size,omitempty"`
	Value    attr.Value `json:"value,omitzero"`
}

// RenderableImage displays a static image and collects nothing.
type RenderableImage struct {
	Base
	Runtime
	Data string `json:"data"`
}

// RenderableNumberOfInstances is the hydrated repeat-count control. Value is
// the current instance identity list; nil when no count was chosen yet.
type RenderableNumberOfInstances struct {
	Base
	Runtime
	Label    string                `json:"label,omitempty"`
	Required bool                  `json:"required,omitempty"`
	Entity   string                `json:"entity,omitempty"`
	Min      *int                  `json:"min,omitempty"`
	Max      *int                  `json:"max,omitempty"`
	Value    []attr.EntityInstance `json:"value,omitempty"`
}

// RenderableText is the hydrated free text input.
type RenderableText struct {
	Base
	Runtime
	Label     string        `json:"label,omitempty"`
	Required  bool          `json:"required,omitempty"`
	Max       *int          `json:"max,omitempty"`
	Variation TextVariation `json:"variation,omitempty"`
	Value     attr.Value    `json:"value,omitzero"`
}

// RenderableTypography displays static text and collects nothing.
type RenderableTypography struct {
	Base
	Runtime
	Style TypographyStyle `json:"style"`
	Text  string          `json:"text"`
}

// RenderableEntity is the hydrated tabular sub-form: Template keeps the
// per-row control list, Instances holds one hydrated row per entity
// instance, and Value carries the answered row data.
type RenderableEntity struct {
	Base
	Runtime
	Label     string             `json:"label,omitempty"`
	Template  RenderableList     `json:"template"`
	Min       *int               `json:"min,omitempty"`
	Max       *int               `json:"max,omitempty"`
	Instances []EntityRow        `json:"instances,omitempty"`
	Value     []attr.EntityValue `json:"value,omitempty"`
}

// RenderableRepeating is one hydrated occurrence of a repeating container.
// IsFirst and IsLast are computed by the engine and never set by a client.
type RenderableRepeating struct {
	Base
	Runtime
	Entity   string           `json:"entity"`
	Display  Display          `json:"display,omitempty"`
	Filter   attr.AttributeID `json:"filter,omitempty"`
	Sort     attr.AttributeID `json:"sort,omitempty"`
	Controls RenderableList   `json:"controls"`
	IsFirst  bool             `json:"isFirst"`
	IsLast   bool             `json:"isLast"`
}

// RenderableCertainty is the hydrated certainty container; Branch reports
// which side the engine took.
type RenderableCertainty struct {
	Base
	Runtime
	Certain   RenderableList  `json:"certain,omitempty"`
	Uncertain RenderableList  `json:"uncertain,omitempty"`
	Branch    CertaintyBranch `json:"branch"`
}

// RenderableSwitch is the hydrated switch container; Branch reports the
// evaluated outcome.
type RenderableSwitch struct {
	Base
	Runtime
	Mode         SwitchMode            `json:"kind,omitempty"`
	Condition    *condition.Expression `json:"condition,omitempty"`
	OutcomeTrue  RenderableList        `json:"outcome_true,omitempty"`
	OutcomeFalse RenderableList        `json:"outcome_false,omitempty"`
	Branch       SwitchBranch          `json:"branch"`
}

func (RenderableBoolean) renderableNode()           {}
func (RenderableCurrency) renderableNode()          {}
func (RenderableDate) renderableNode()              {}
func (RenderableTime) renderableNode()              {}
func (RenderableDateTime) renderableNode()          {}
func (RenderableOptions) renderableNode()           {}
func (RenderableFile) renderableNode()              {}
func (RenderableImage) renderableNode()             {}
func (RenderableNumberOfInstances) renderableNode() {}
func (RenderableText) renderableNode()              {}
func (RenderableTypography) renderableNode()        {}
func (RenderableEntity) renderableNode()            {}
func (RenderableRepeating) renderableNode()         {}
func (RenderableCertainty) renderableNode()         {}
func (RenderableSwitch) renderableNode()            {}
