// Package preview walks a hydrated screen in the terminal, prompting for
// each control and collecting the answers into a response payload. It is a
// development aid for inspecting interview definitions and engine output,
// not the production runtime.
package preview

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/control"
	"github.com/goliatone/go-interview/pkg/session"
)

// Preview prompts through a screen's control tree and collects answers.
type Preview struct {
	driver PromptDriver
	out    io.Writer
}

// New constructs a Preview with defaults (survey driver, stdout output).
func New(options ...Option) *Preview {
	p := &Preview{out: defaultOutput()}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = defaultDriver(p)
	}
	return p
}

// Run prompts for every answerable control on the screen and returns the
// collected answers. An empty answer leaves the attribute out of the result,
// matching the "still needs an answer" state.
func (p *Preview) Run(ctx context.Context, screen session.Screen) (attr.ResponseData, error) {
	if screen.Title != "" {
		if err := p.driver.Info(ctx, "== "+screen.Title+" =="); err != nil {
			return attr.ResponseData{}, err
		}
	}

	values := attr.Values{}
	if err := p.walk(ctx, screen.Controls, values); err != nil {
		return attr.ResponseData{}, err
	}
	return attr.ResponseData{Values: values}, nil
}

func (p *Preview) walk(ctx context.Context, controls control.RenderableList, values attr.Values) error {
	for _, ctrl := range controls {
		if err := p.prompt(ctx, ctrl, values); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preview) prompt(ctx context.Context, ctrl control.Renderable, values attr.Values) error {
	switch c := ctrl.(type) {
	case *control.RenderableBoolean:
		return p.promptBoolean(ctx, c, values)
	case *control.RenderableCurrency:
		return p.promptCurrency(ctx, c, values)
	case *control.RenderableDate:
		return p.promptDate(ctx, c, values)
	case *control.RenderableTime:
		return p.promptTime(ctx, c, values)
	case *control.RenderableDateTime:
		return p.promptDateTime(ctx, c, values)
	case *control.RenderableOptions:
		return p.promptOptions(ctx, c, values)
	case *control.RenderableFile:
		return p.promptFile(ctx, c, values)
	case *control.RenderableImage:
		return p.driver.Info(ctx, fmt.Sprintf("[image %s]", c.ID))
	case *control.RenderableNumberOfInstances:
		return p.promptInstanceCount(ctx, c, values)
	case *control.RenderableText:
		return p.promptText(ctx, c, values)
	case *control.RenderableTypography:
		return p.driver.Info(ctx, control.SanitizeDisplayText(c.Text))
	case *control.RenderableEntity:
		return p.promptEntity(ctx, c, values)
	case *control.RenderableRepeating:
		return p.walk(ctx, c.Controls, values)
	case *control.RenderableCertainty:
		if c.Branch == control.BranchUncertain {
			return p.walk(ctx, c.Uncertain, values)
		}
		return p.walk(ctx, c.Certain, values)
	case *control.RenderableSwitch:
		if c.Branch == control.BranchFalse {
			return p.walk(ctx, c.OutcomeFalse, values)
		}
		return p.walk(ctx, c.OutcomeTrue, values)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownControl, ctrl)
	}
}

// promptBoolean offers a three-way choice so the attribute can stay
// unanswered; a yes/no prompt would force an explicit answer every time.
func (p *Preview) promptBoolean(ctx context.Context, c *control.RenderableBoolean, values attr.Values) error {
	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      label(c.Label, c.Attribute),
		Options:      []string{"Yes", "No", "Skip"},
		DefaultIndex: booleanDefaultIndex(c.Default),
	})
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		values[c.Attribute] = attr.Bool(true)
	case 1:
		values[c.Attribute] = attr.Bool(false)
	}
	return nil
}

func booleanDefaultIndex(def *bool) int {
	switch {
	case def == nil:
		return 2
	case *def:
		return 0
	default:
		return 1
	}
}

func (p *Preview) promptCurrency(ctx context.Context, c *control.RenderableCurrency, values attr.Values) error {
	message := label(c.Label, c.Attribute)
	if c.Symbol != "" {
		message = fmt.Sprintf("%s (%s)", message, c.Symbol)
	}
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: message,
		Validator: func(s string) error {
			amount, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", s)
			}
			if c.Min != nil && amount < *c.Min {
				return fmt.Errorf("minimum is %v", *c.Min)
			}
			if c.Max != nil && amount > *c.Max {
				return fmt.Errorf("maximum is %v", *c.Max)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	amount, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", c.ID, err)
	}
	values[c.Attribute] = attr.Number(amount)
	return nil
}

func (p *Preview) promptDate(ctx context.Context, c *control.RenderableDate, values attr.Values) error {
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Help:    "format: " + attr.DateLayout,
		Validator: func(s string) error {
			if _, err := time.Parse(attr.DateLayout, s); err != nil {
				return fmt.Errorf("want %s", attr.DateLayout)
			}
			// Hydrated bounds are concrete dates; the layout compares
			// lexically.
			if c.Min != "" && s < c.Min {
				return fmt.Errorf("earliest is %s", c.Min)
			}
			if c.Max != "" && s > c.Max {
				return fmt.Errorf("latest is %s", c.Max)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	values[c.Attribute] = attr.String(answer)
	return nil
}

func (p *Preview) promptTime(ctx context.Context, c *control.RenderableTime, values attr.Values) error {
	layout := attr.TimeLayout
	if c.AmPmFormat {
		layout = attr.TimeLayout12
	}
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Help:    "format: " + layout,
		Validator: func(s string) error {
			parsed, err := time.Parse(layout, s)
			if err != nil {
				return fmt.Errorf("want %s", layout)
			}
			if c.MinutesIncrement > 0 && parsed.Minute()%c.MinutesIncrement != 0 {
				return fmt.Errorf("minutes snap to %d", c.MinutesIncrement)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	parsed, err := time.Parse(layout, answer)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", c.ID, err)
	}
	// The 12 hour layout is display only; the wire format is always 24 hour.
	values[c.Attribute] = attr.String(parsed.Format(attr.TimeLayout))
	return nil
}

func (p *Preview) promptDateTime(ctx context.Context, c *control.RenderableDateTime, values attr.Values) error {
	layout := attr.DateTimeLayout
	if c.AmPmFormat {
		layout = attr.DateTimeLayout12
	}
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Help:    "format: " + layout,
		Validator: func(s string) error {
			if _, err := time.Parse(layout, s); err != nil {
				return fmt.Errorf("want %s", layout)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	parsed, err := time.Parse(layout, answer)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", c.ID, err)
	}
	values[c.Attribute] = attr.String(parsed.Format(attr.DateTimeLayout))
	return nil
}

func (p *Preview) promptOptions(ctx context.Context, c *control.RenderableOptions, values attr.Values) error {
	labels := make([]string, 0, len(c.Options)+1)
	for _, opt := range c.Options {
		labels = append(labels, opt.Label)
	}
	const otherLabel = "Other..."
	if c.AllowOther {
		labels = append(labels, otherLabel)
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      label(c.Label, c.Attribute),
		Options:      labels,
		DefaultIndex: defaultOptionIndex(c.Options, c.Default),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(labels) {
		return nil
	}

	if c.AllowOther && idx == len(labels)-1 {
		answer, err := p.driver.Input(ctx, InputConfig{Message: label(c.Label, c.Attribute)})
		if err != nil || answer == "" {
			return err
		}
		values[c.Attribute] = attr.String(answer)
		return nil
	}

	switch v := c.Options[idx].Value.(type) {
	case bool:
		values[c.Attribute] = attr.Bool(v)
	case string:
		values[c.Attribute] = attr.String(v)
	default:
		return fmt.Errorf("preview: %s: option value is %T, want string or bool", c.ID, v)
	}
	return nil
}

func (p *Preview) promptFile(ctx context.Context, c *control.RenderableFile, values attr.Values) error {
	limit := 1
	if c.Max != nil {
		limit = *c.Max
	}
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Help:    fmt.Sprintf("comma-separated %s... references, up to %d", attr.FileRefPrefix, limit),
	})
	if err != nil || answer == "" {
		return err
	}

	refs := splitRefs(answer)
	if len(refs) > limit {
		return fmt.Errorf("preview: %s: %d files exceeds the cap of %d", c.ID, len(refs), limit)
	}
	value, err := attr.File(refs...)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", c.ID, err)
	}
	values[c.Attribute] = value
	return nil
}

func (p *Preview) promptInstanceCount(ctx context.Context, c *control.RenderableNumberOfInstances, values attr.Values) error {
	floor := 0
	if c.Required {
		floor = 1
	}
	if c.Min != nil {
		floor = *c.Min
	}
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Help:    fmt.Sprintf("how many %s entries", c.Entity),
		Validator: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("not a count: %q", s)
			}
			if n < floor {
				return fmt.Errorf("minimum is %d", floor)
			}
			if c.Max != nil && n > *c.Max {
				return fmt.Errorf("maximum is %d", *c.Max)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", c.ID, err)
	}
	// The wire shape is a list of instance identities, not a bare count.
	// Real ids are engine assigned; the preview emits <entity>/<index>
	// placeholders in their place.
	rows := make([]attr.Values, n)
	for i := range rows {
		rows[i] = attr.Values{attr.InstanceIDKey: attr.String(fmt.Sprintf("%s/%d", c.Entity, i))}
	}
	values[c.Attribute] = attr.Rows(rows...)
	return nil
}

func (p *Preview) promptText(ctx context.Context, c *control.RenderableText, values attr.Values) error {
	answer, err := p.driver.Input(ctx, InputConfig{
		Message: label(c.Label, c.Attribute),
		Validator: func(s string) error {
			if c.Max != nil && len([]rune(s)) > *c.Max {
				return fmt.Errorf("maximum length is %d", *c.Max)
			}
			return nil
		},
	})
	if err != nil || answer == "" {
		return err
	}
	values[c.Attribute] = attr.String(answer)
	return nil
}

func (p *Preview) promptEntity(ctx context.Context, c *control.RenderableEntity, values attr.Values) error {
	rows := make([]attr.Values, 0, len(c.Instances))
	for i, instance := range c.Instances {
		if err := p.driver.Info(ctx, fmt.Sprintf("-- %s %d/%d --", label(c.Label, c.Attribute), i+1, len(c.Instances))); err != nil {
			return err
		}
		row := attr.Values{}
		if err := p.walk(ctx, instance.Controls, row); err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	values[c.Attribute] = attr.Rows(rows...)
	return nil
}

func label(text string, fallback attr.AttributeID) string {
	if text != "" {
		return control.SanitizeDisplayText(text)
	}
	return string(fallback)
}

func defaultOptionIndex(options []control.Option, def any) int {
	if def == nil {
		return -1
	}
	for i, opt := range options {
		if opt.Value == def {
			return i
		}
	}
	return -1
}

func splitRefs(answer string) []string {
	parts := strings.Split(answer, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
