package control

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-interview/pkg/attr"
)

// Validate checks the hydrated boolean control and its tri-state value.
func (c RenderableBoolean) Validate() error {
	if err := c.validate(KindBoolean); err != nil {
		return err
	}
	return validateScalarValue(c.ID, c.Value, attr.ValueBool)
}

func (c RenderableCurrency) Validate() error {
	if err := c.validate(KindCurrency); err != nil {
		return err
	}
	if c.Min != nil && c.Max != nil && *c.Max < *c.Min {
		return fmt.Errorf("control %s: max %v is below min %v", c.ID, *c.Max, *c.Min)
	}
	if err := validateScalarValue(c.ID, c.Value, attr.ValueNumber); err != nil {
		return err
	}
	if amount, ok := scalarNumber(c.Value); ok {
		if c.Min != nil && amount < *c.Min {
			return fmt.Errorf("control %s: amount %v is below min %v", c.ID, amount, *c.Min)
		}
		if c.Max != nil && amount > *c.Max {
			return fmt.Errorf("control %s: amount %v is above max %v", c.ID, amount, *c.Max)
		}
	}
	return nil
}

func (c RenderableDate) Validate() error {
	if err := c.validate(KindDate); err != nil {
		return err
	}
	// Hydration resolves the "now" sentinel; a renderable bound must be
	// concrete.
	if err := validateDateBound("min", c.Min, false); err != nil {
		return err
	}
	if err := validateDateBound("max", c.Max, false); err != nil {
		return err
	}
	return validateTemporalValue(c.ID, c.Value, attr.DateLayout, "yyyy-MM-dd")
}

func (c RenderableTime) Validate() error {
	if err := c.validate(KindTime); err != nil {
		return err
	}
	if err := validateTimeBound("min", c.Min); err != nil {
		return err
	}
	if err := validateTimeBound("max", c.Max); err != nil {
		return err
	}
	if err := validateMinutesIncrement(c.MinutesIncrement); err != nil {
		return err
	}
	if err := validateTemporalValue(c.ID, c.Value, attr.TimeLayout, "HH:mm:ss"); err != nil {
		return err
	}
	return validateIncrementAlignment(c.ID, c.Value, attr.TimeLayout, c.MinutesIncrement)
}

func (c RenderableDateTime) Validate() error {
	if err := c.validate(KindDateTime); err != nil {
		return err
	}
	if err := validateDateBound("date_min", c.DateMin, false); err != nil {
		return err
	}
	if err := validateDateBound("date_max", c.DateMax, false); err != nil {
		return err
	}
	if err := validateTimeBound("time_min", c.TimeMin); err != nil {
		return err
	}
	if err := validateTimeBound("time_max", c.TimeMax); err != nil {
		return err
	}
	if err := validateMinutesIncrement(c.MinutesIncrement); err != nil {
		return err
	}
	if err := validateTemporalValue(c.ID, c.Value, attr.DateTimeLayout, "yyyy-MM-dd HH:mm:ss"); err != nil {
		return err
	}
	return validateIncrementAlignment(c.ID, c.Value, attr.DateTimeLayout, c.MinutesIncrement)
}

func (c RenderableOptions) Validate() error {
	if err := c.validate(KindOptions); err != nil {
		return err
	}
	for i, opt := range c.Options {
		if err := validateOptionValue(opt.Value); err != nil {
			return fmt.Errorf("control %s: option %d: %w", c.ID, i, err)
		}
	}
	if c.Value.IsZero() || c.Value.Kind() == attr.ValueNull {
		return nil
	}
	selected, ok := c.Value.Scalar()
	if !ok {
		return fmt.Errorf("control %s: selection must be a scalar", c.ID)
	}
	if err := validateOptionValue(selected); err != nil {
		return fmt.Errorf("control %s: %w", c.ID, err)
	}
	if c.AllowOther {
		return nil
	}
	for _, opt := range c.Options {
		if opt.Value == selected {
			return nil
		}
	}
	return fmt.Errorf("control %s: selection %v is not one of the options", c.ID, selected)
}

func (c RenderableFile) Validate() error {
	if err := c.validate(KindFile); err != nil {
		return err
	}
	if c.Max != nil && *c.Max < 1 {
		return fmt.Errorf("control %s: max %d must allow at least one file", c.ID, *c.Max)
	}
	if c.MaxSize != nil && *c.MaxSize <= 0 {
		return fmt.Errorf("control %s: max_size %v must be positive", c.ID, *c.MaxSize)
	}
	if c.Value.IsZero() || c.Value.Kind() == attr.ValueNull {
		return nil
	}
	file, ok := c.Value.AsFile()
	if !ok {
		return fmt.Errorf("control %s: value must be a file reference set", c.ID)
	}
	if err := file.Validate(); err != nil {
		return fmt.Errorf("control %s: %w", c.ID, err)
	}
	limit := 1
	if c.Max != nil {
		limit = *c.Max
	}
	if len(file.Value) > limit {
		return fmt.Errorf("control %s: %d files exceed the limit of %d", c.ID, len(file.Value), limit)
	}
	return nil
}

func (c RenderableImage) Validate() error {
	if err := c.validate(KindImage); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Data, "data:") {
		return fmt.Errorf("control %s: image data must be a data URI", c.ID)
	}
	return nil
}

// Validate checks the instance count against the control's bounds. A count
// below the minimum is reported as a violation, never silently clamped.
func (c RenderableNumberOfInstances) Validate() error {
	if err := c.validate(KindNumberOfInstances); err != nil {
		return err
	}
	if err := validateCountBounds(c.ID, c.Min, c.Max); err != nil {
		return err
	}
	floor := 0
	if c.Required {
		floor = 1
	}
	if c.Min != nil {
		floor = *c.Min
	}
	count := len(c.Value)
	if count < floor {
		return fmt.Errorf("control %s: %d instances are below the minimum of %d", c.ID, count, floor)
	}
	if c.Max != nil && count > *c.Max {
		return fmt.Errorf("control %s: %d instances exceed the maximum of %d", c.ID, count, *c.Max)
	}
	for i, inst := range c.Value {
		if inst.ID == "" {
			return fmt.Errorf("control %s: instance %d is missing %s", c.ID, i, attr.InstanceIDKey)
		}
	}
	return nil
}

func (c RenderableText) Validate() error {
	if err := c.validate(KindText); err != nil {
		return err
	}
	switch c.Variation {
	case "", VariationEmail, VariationNumber:
	default:
		return fmt.Errorf("control %s: unknown text variation %q", c.ID, c.Variation)
	}
	if err := validateScalarValue(c.ID, c.Value, attr.ValueString); err != nil {
		return err
	}
	if c.Max != nil {
		if text, ok := c.Value.AsString(); ok && len(text) > *c.Max {
			return fmt.Errorf("control %s: text length %d exceeds max %d", c.ID, len(text), *c.Max)
		}
	}
	return nil
}

func (c RenderableTypography) Validate() error {
	if err := c.validate(KindTypography); err != nil {
		return err
	}
	switch c.Style {
	case StyleH1, StyleH2, StyleH3, StyleH4, StyleH5, StyleH6, StyleP:
		return nil
	default:
		return fmt.Errorf("control %s: unknown typography style %q", c.ID, c.Style)
	}
}

func (c RenderableEntity) Validate() error {
	if err := c.validate(KindEntity); err != nil {
		return err
	}
	if c.Attribute == "" {
		return fmt.Errorf("control %s: entity control needs an aggregating attribute", c.ID)
	}
	if err := validateCountBounds(c.ID, c.Min, c.Max); err != nil {
		return err
	}
	rows := len(c.Value)
	if c.Min != nil && rows < *c.Min {
		return fmt.Errorf("control %s: %d rows are below the minimum of %d", c.ID, rows, *c.Min)
	}
	if c.Max != nil && rows > *c.Max {
		return fmt.Errorf("control %s: %d rows exceed the maximum of %d", c.ID, rows, *c.Max)
	}
	for i, row := range c.Value {
		if row.ID == "" {
			return fmt.Errorf("control %s: row %d is missing %s", c.ID, i, attr.InstanceIDKey)
		}
	}
	for _, inst := range c.Instances {
		for _, child := range inst.Controls {
			if err := child.Validate(); err != nil {
				return err
			}
		}
	}
	return validateChildren(c.Template)
}

func (c RenderableRepeating) Validate() error {
	if err := c.validate(KindRepeating); err != nil {
		return err
	}
	if c.Entity == "" {
		return fmt.Errorf("control %s: repeating container needs an entity", c.ID)
	}
	switch c.Display {
	case "", DisplayList:
		if c.Filter != "" || c.Sort != "" {
			return fmt.Errorf("control %s: filter/sort only apply in table mode", c.ID)
		}
	case DisplayTable:
	default:
		return fmt.Errorf("control %s: unknown display %q", c.ID, c.Display)
	}
	return validateChildren(c.Controls)
}

func (c RenderableCertainty) Validate() error {
	if err := c.validate(KindCertainty); err != nil {
		return err
	}
	if c.Attribute == "" {
		return fmt.Errorf("control %s: certainty container needs an attribute to branch on", c.ID)
	}
	switch c.Branch {
	case BranchCertain, BranchUncertain:
	default:
		return fmt.Errorf("control %s: hydrated certainty container has branch %q", c.ID, c.Branch)
	}
	if err := validateChildren(c.Certain); err != nil {
		return err
	}
	return validateChildren(c.Uncertain)
}

func (c RenderableSwitch) Validate() error {
	if err := c.validate(KindSwitch); err != nil {
		return err
	}
	switch c.Mode {
	case "", SwitchStatic, SwitchDynamic:
	default:
		return fmt.Errorf("control %s: unknown switch kind %q", c.ID, c.Mode)
	}
	switch c.Branch {
	case BranchTrue, BranchFalse:
	default:
		return fmt.Errorf("control %s: hydrated switch container has branch %q", c.ID, c.Branch)
	}
	if c.Condition != nil {
		if err := c.Condition.Validate(); err != nil {
			return fmt.Errorf("control %s: %w", c.ID, err)
		}
	}
	if err := validateChildren(c.OutcomeTrue); err != nil {
		return err
	}
	return validateChildren(c.OutcomeFalse)
}

func validateChildren(list RenderableList) error {
	for _, child := range list {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateScalarValue accepts an absent value, an explicit null, or a scalar
// of the expected kind. Anything else is a violation.
func validateScalarValue(id string, v attr.Value, want attr.ValueKind) error {
	if v.IsZero() || v.Kind() == attr.ValueNull {
		return nil
	}
	if v.Kind() != want {
		return fmt.Errorf("control %s: value kind is %q, want %q", id, v.Kind(), want)
	}
	return nil
}

func validateTemporalValue(id string, v attr.Value, layout, name string) error {
	if v.IsZero() || v.Kind() == attr.ValueNull {
		return nil
	}
	text, ok := v.AsString()
	if !ok {
		return fmt.Errorf("control %s: value kind is %q, want %q", id, v.Kind(), attr.ValueString)
	}
	if _, err := time.Parse(layout, text); err != nil {
		return fmt.Errorf("control %s: value %q is not a %s literal", id, text, name)
	}
	return nil
}

// validateIncrementAlignment checks that a time-bearing value sits on a
// minutes_increment boundary, counted from the top of the hour.
func validateIncrementAlignment(id string, v attr.Value, layout string, increment int) error {
	if increment == 0 || v.IsZero() || v.Kind() == attr.ValueNull {
		return nil
	}
	text, ok := v.AsString()
	if !ok {
		return nil
	}
	parsed, err := time.Parse(layout, text)
	if err != nil {
		return nil
	}
	if parsed.Second() != 0 || parsed.Minute()%increment != 0 {
		return fmt.Errorf("control %s: time %q is not aligned to %d minute increments", id, text, increment)
	}
	return nil
}

func scalarNumber(v attr.Value) (float64, bool) {
	if v.IsZero() {
		return 0, false
	}
	return v.AsNumber()
}
