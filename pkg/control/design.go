package control

import (
	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/condition"
)

// TextVariation narrows the input semantics of a text control without
// changing the wire type.
type TextVariation string

const (
	VariationEmail  TextVariation = "email"
	VariationNumber TextVariation = "number"
)

// TypographyStyle is the fixed set of heading and body styles a typography
// control can render.
type TypographyStyle string

const (
	StyleH1 TypographyStyle = "h1"
	StyleH2 TypographyStyle = "h2"
	StyleH3 TypographyStyle = "h3"
	StyleH4 TypographyStyle = "h4"
	StyleH5 TypographyStyle = "h5"
	StyleH6 TypographyStyle = "h6"
	StyleP  TypographyStyle = "p"
)

// Display selects how a repeating container lays out its instances.
type Display string

const (
	DisplayList  Display = "list"
	DisplayTable Display = "table"
)

// SwitchMode tells whether a switch container's branch is fixed at design
// time or depends on live data.
type SwitchMode string

const (
	SwitchStatic  SwitchMode = "static"
	SwitchDynamic SwitchMode = "dynamic"
)

// Option is one selectable entry of an options control. Value is a string or
// a boolean.
type Option struct {
	Label string `json:"label,omitempty"`
	Value any    `json:"value"`
}

// BooleanControl is a tri-state checkbox. The value is true, false, or null
// for reviewed-but-unanswered; an omitted value means the attribute still
// needs an answer, so clients must never translate null into an omission.
type BooleanControl struct {
	Base
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
	Default  *bool  `json:"default,omitempty"`
}

// CurrencyControl is a money input. Negative amounts are allowed unless Min
// clamps the range.
type CurrencyControl struct {
	Base
	Label    string   `json:"label,omitempty"`
	Required bool     `json:"required,omitempty"`
	Symbol   string   `json:"symbol,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
}

// DateControl is a date picker. Min and Max are literal yyyy-MM-dd dates or
// the "now" sentinel, which the engine resolves before hydration.
type DateControl struct {
	Base
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
	Min      string `json:"min,omitempty"`
	Max      string `json:"max,omitempty"`
}

// TimeControl is a time picker. The wire format is always 24 hour HH:mm:ss;
// AmPmFormat only changes how hosts display the value.
type TimeControl struct {
	Base
	Label            string `json:"label,omitempty"`
	Required         bool   `json:"required,omitempty"`
	Min              string `json:"min,omitempty"`
	Max              string `json:"max,omitempty"`
	MinutesIncrement int    `json:"minutes_increment,omitempty"`
	AmPmFormat       bool   `json:"amPmFormat,omitempty"`
}

// DateTimeControl combines a date and a time picker into one value.
type DateTimeControl struct {
	Base
	Label            string `json:"label,omitempty"`
	Required         bool   `json:"required,omitempty"`
	DateMin          string `json:"date_min,omitempty"`
	DateMax          string `json:"date_max,omitempty"`
	TimeMin          string `json:"time_min,omitempty"`
	TimeMax          string `json:"time_max,omitempty"`
	MinutesIncrement int    `json:"minutes_increment,omitempty"`
	AmPmFormat       bool   `json:"amPmFormat,omitempty"`
}

// OptionsControl is a single select. When EnumID is set the option list is
// server populated at hydration time; EnumID itself is design-time only and
// must never survive into a renderable control.
type OptionsControl struct {
	Base
	Label      string   `json:"label,omitempty"`
	Required   bool     `json:"required,omitempty"`
	Options    []Option `json:"options,omitempty"`
	AllowOther bool     `json:"allow_other,omitempty"`
	EnumID     string   `json:"enum_id,omitempty"`
	Default    any      `json:"default,omitempty"`
}

// FileControl is a file upload. Max caps the file count (one when unset) and
// MaxSize is a per-file cap in megabytes.
//
// TODO: confirm with the engine team whether upload is production ready;
// earlier schema revisions flagged these bounds as not yet enforced.
type FileControl struct {
	Base
	Label    string   `json:"label,omitempty"`
	Required bool     `json:"required,omitempty"`
	Max      *int     `json:"max,omitempty"`
	FileType string   `json:"file_type,omitempty"`
	MaxSize  *float64 `json:"max_size,omitempty"`
}

// ImageControl displays a static image. Data is a base64 data URI; nothing
// is collected.
type ImageControl struct {
	Base
	Data string `json:"data"`
}

// NumberOfInstancesControl sets the repeat count for an entity. Min defaults
// to zero, or one when the control is required.
type NumberOfInstancesControl struct {
	Base
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
	Entity   string `json:"entity,omitempty"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
}

// TextControl is a free text input. Max bounds the length; Variation narrows
// the input semantics without changing the wire type.
type TextControl struct {
	Base
	Label     string        `json:"label,omitempty"`
	Required  bool          `json:"required,omitempty"`
	Max       *int          `json:"max,omitempty"`
	Variation TextVariation `json:"variation,omitempty"`
}

// TypographyControl displays static text in one of the fixed styles.
type TypographyControl struct {
	Base
	Style TypographyStyle `json:"style"`
	Text  string          `json:"text"`
}

// EntityControl is a tabular sub-form: Template is the ordered control list
// applied to every row, Min and Max bound the row count. The aggregating
// attribute in Base names the entity.
type EntityControl struct {
	Base
	Label    string      `json:"label,omitempty"`
	Template ControlList `json:"template"`
	Min      *int        `json:"min,omitempty"`
	Max      *int        `json:"max,omitempty"`
}

// RepeatingContainer repeats its child controls once per instance of Entity.
// Filter and Sort name attributes and apply only in table mode.
type RepeatingContainer struct {
	Base
	Entity   string           `json:"entity"`
	Display  Display          `json:"display,omitempty"`
	Filter   attr.AttributeID `json:"filter,omitempty"`
	Sort     attr.AttributeID `json:"sort,omitempty"`
	Controls ControlList      `json:"controls"`
}

// CertaintyContainer branches between child control sets based on whether
// the bound attribute holds a confident value.
type CertaintyContainer struct {
	Base
	Certain   ControlList `json:"certain,omitempty"`
	Uncertain ControlList `json:"uncertain,omitempty"`
}

// SwitchContainer branches between child control sets by evaluating
// Condition. Static switches fix the branch at design time; dynamic ones
// re-evaluate against live data.
type SwitchContainer struct {
	Base
	Mode         SwitchMode            `json:"kind,omitempty"`
	Condition    *condition.Expression `json:"condition,omitempty"`
	OutcomeTrue  ControlList           `json:"outcome_true,omitempty"`
	OutcomeFalse ControlList           `json:"outcome_false,omitempty"`
}

func (BooleanControl) controlNode()           {}
func (CurrencyControl) controlNode()          {}
func (DateControl) controlNode()              {}
func (TimeControl) controlNode()              {}
func (DateTimeControl) controlNode()          {}
func (OptionsControl) controlNode()           {}
func (FileControl) controlNode()              {}
func (ImageControl) controlNode()             {}
func (NumberOfInstancesControl) controlNode() {}
func (TextControl) controlNode()              {}
func (TypographyControl) controlNode()        {}
func (EntityControl) controlNode()            {}
func (RepeatingContainer) controlNode()       {}
func (CertaintyContainer) controlNode()       {}
func (SwitchContainer) controlNode()          {}
