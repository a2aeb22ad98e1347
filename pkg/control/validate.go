package control

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-interview/pkg/attr"
)

func validateDateBound(field, bound string, allowSentinel bool) error {
	if bound == "" {
		return nil
	}
	if bound == attr.NowSentinel {
		if allowSentinel {
			return nil
		}
		return fmt.Errorf("control: %s must be a concrete date after hydration, got %q", field, bound)
	}
	if _, err := time.Parse(attr.DateLayout, bound); err != nil {
		return fmt.Errorf("control: %s %q is not a yyyy-MM-dd date", field, bound)
	}
	return nil
}

func validateTimeBound(field, bound string) error {
	if bound == "" {
		return nil
	}
	if _, err := time.Parse(attr.TimeLayout, bound); err != nil {
		return fmt.Errorf("control: %s %q is not an HH:mm:ss time", field, bound)
	}
	return nil
}

func validateMinutesIncrement(inc int) error {
	if inc == 0 {
		return nil
	}
	if inc < 0 || inc > 60 || 60%inc != 0 {
		return fmt.Errorf("control: minutes_increment %d must divide 60", inc)
	}
	return nil
}

func validateOptionValue(v any) error {
	switch v.(type) {
	case string, bool:
		return nil
	default:
		return fmt.Errorf("control: option value must be a string or boolean, got %T", v)
	}
}

func validateCountBounds(id string, min, max *int) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("control %s: min %d is negative", id, *min)
	}
	if max != nil && *max < 0 {
		return fmt.Errorf("control %s: max %d is negative", id, *max)
	}
	if min != nil && max != nil && *max < *min {
		return fmt.Errorf("control %s: max %d is below min %d", id, *max, *min)
	}
	return nil
}

// Validate checks the structural rules of the design-time boolean control.
func (c BooleanControl) Validate() error {
	return c.validate(KindBoolean)
}

func (c CurrencyControl) Validate() error {
	if err := c.validate(KindCurrency); err != nil {
		return err
	}
	if c.Min != nil && c.Max != nil && *c.Max < *c.Min {
		return fmt.Errorf("control %s: max %v is below min %v", c.ID, *c.Max, *c.Min)
	}
	return nil
}

func (c DateControl) Validate() error {
	if err := c.validate(KindDate); err != nil {
		return err
	}
	if err := validateDateBound("min", c.Min, true); err != nil {
		return err
	}
	return validateDateBound("max", c.Max, true)
}

func (c TimeControl) Validate() error {
	if err := c.validate(KindTime); err != nil {
		return err
	}
	if err := validateTimeBound("min", c.Min); err != nil {
		return err
	}
	if err := validateTimeBound("max", c.Max); err != nil {
		return err
	}
	return validateMinutesIncrement(c.MinutesIncrement)
}

func (c DateTimeControl) Validate() error {
	if err := c.validate(KindDateTime); err != nil {
		return err
	}
	if err := validateDateBound("date_min", c.DateMin, true); err != nil {
		return err
	}
	if err := validateDateBound("date_max", c.DateMax, true); err != nil {
		return err
	}
	if err := validateTimeBound("time_min", c.TimeMin); err != nil {
		return err
	}
	if err := validateTimeBound("time_max", c.TimeMax); err != nil {
		return err
	}
	return validateMinutesIncrement(c.MinutesIncrement)
}

func (c OptionsControl) Validate() error {
	if err := c.validate(KindOptions); err != nil {
		return err
	}
	for i, opt := range c.Options {
		if err := validateOptionValue(opt.Value); err != nil {
			return fmt.Errorf("control %s: option %d: %w", c.ID, i, err)
		}
	}
	if c.Default != nil {
		if err := validateOptionValue(c.Default); err != nil {
			return fmt.Errorf("control %s: default: %w", c.ID, err)
		}
	}
	return nil
}

func (c FileControl) Validate() error {
	if err := c.validate(KindFile); err != nil {
		return err
	}
	if c.Max != nil && *c.Max < 1 {
		return fmt.Errorf("control %s: max %d must allow at least one file", c.ID, *c.Max)
	}
	if c.MaxSize != nil && *c.MaxSize <= 0 {
		return fmt.Errorf("control %s: max_size %v must be positive", c.ID, *c.MaxSize)
	}
	return nil
}

func (c ImageControl) Validate() error {
	if err := c.validate(KindImage); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Data, "data:") {
		return fmt.Errorf("control %s: image data must be a data URI", c.ID)
	}
	return nil
}

func (c NumberOfInstancesControl) Validate() error {
	if err := c.validate(KindNumberOfInstances); err != nil {
		return err
	}
	return validateCountBounds(c.ID, c.Min, c.Max)
}

func (c TextControl) Validate() error {
	if err := c.validate(KindText); err != nil {
		return err
	}
	if c.Max != nil && *c.Max < 1 {
		return fmt.Errorf("control %s: max length %d must be positive", c.ID, *c.Max)
	}
	switch c.Variation {
	case "", VariationEmail, VariationNumber:
		return nil
	default:
		return fmt.Errorf("control %s: unknown text variation %q", c.ID, c.Variation)
	}
}

func (c TypographyControl) Validate() error {
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

func (c EntityControl) Validate() error {
	if err := c.validate(KindEntity); err != nil {
		return err
	}
	if c.Attribute == "" {
		return fmt.Errorf("control %s: entity control needs an aggregating attribute", c.ID)
	}
	if err := validateCountBounds(c.ID, c.Min, c.Max); err != nil {
		return err
	}
	return validateNesting(c, map[string]bool{})
}

func (c RepeatingContainer) Validate() error {
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
	return validateNesting(c, map[string]bool{})
}

func (c CertaintyContainer) Validate() error {
	if err := c.validate(KindCertainty); err != nil {
		return err
	}
	if c.Attribute == "" {
		return fmt.Errorf("control %s: certainty container needs an attribute to branch on", c.ID)
	}
	return validateNesting(c, map[string]bool{})
}

func (c SwitchContainer) Validate() error {
	if err := c.validate(KindSwitch); err != nil {
		return err
	}
	switch c.Mode {
	case "", SwitchStatic, SwitchDynamic:
	default:
		return fmt.Errorf("control %s: unknown switch kind %q", c.ID, c.Mode)
	}
	if c.Mode == SwitchDynamic && c.Condition == nil {
		return fmt.Errorf("control %s: dynamic switch needs a condition", c.ID)
	}
	if c.Condition != nil {
		if err := c.Condition.Validate(); err != nil {
			return fmt.Errorf("control %s: %w", c.ID, err)
		}
	}
	return validateNesting(c, map[string]bool{})
}

var errSelfReference = errors.New("control: entity is nested inside itself without an instance boundary")

// validateNesting walks container children and rejects an entity or
// repeating container that reappears for an entity already open on the
// current path. Such a template would expand forever at hydration time.
func validateNesting(ctrl Control, open map[string]bool) error {
	enter := func(entity string, children ...ControlList) error {
		if entity != "" {
			if open[entity] {
				return fmt.Errorf("%w: %s", errSelfReference, entity)
			}
			open[entity] = true
			defer delete(open, entity)
		}
		for _, list := range children {
			for _, child := range list {
				if err := validateNesting(child, open); err != nil {
					return err
				}
			}
		}
		return nil
	}

	switch c := ctrl.(type) {
	case EntityControl:
		return enter(string(c.Attribute), c.Template)
	case *EntityControl:
		return enter(string(c.Attribute), c.Template)
	case RepeatingContainer:
		return enter(c.Entity, c.Controls)
	case *RepeatingContainer:
		return enter(c.Entity, c.Controls)
	case CertaintyContainer:
		return enter("", c.Certain, c.Uncertain)
	case *CertaintyContainer:
		return enter("", c.Certain, c.Uncertain)
	case SwitchContainer:
		return enter("", c.OutcomeTrue, c.OutcomeFalse)
	case *SwitchContainer:
		return enter("", c.OutcomeTrue, c.OutcomeFalse)
	default:
		return nil
	}
}
