package definition

import (
	"strings"
	"testing"

	"github.com/goliatone/go-interview/pkg/control"
)

const yamlFixture = `
id: household-claim
title: Household claim
version: "2026.1"
screens:
  - id: about-you
    title: About you
    step: s1
    controls:
      - id: q-name
        type: text
        attribute: name
        max: 80
      - id: q-married
        type: boolean
        attribute: married
        required: true
  - id: children
    title: Children
    step: s2
    controls:
      - id: q-children
        type: entity
        attribute: child
        min: 0
        max: 5
        template:
          - id: q-child-name
            type: text
            attribute: child_name
          - id: q-child-dob
            type: date
            attribute: child_dob
            min: "1900-01-01"
            max: now
`

const jsonFixture = `{
  "id": "simple",
  "title": "Simple",
  "screens": [
    {
      "id": "only",
      "title": "Only",
      "controls": [
        {"id": "q1", "type": "options", "attribute": "colour",
         "options": [{"label": "Red", "value": "red"}, {"label": "Blue", "value": "blue"}]}
      ]
    }
  ]
}`

func TestParseYAML(t *testing.T) {
	def, err := Parse([]byte(yamlFixture))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if def.ID != "household-claim" || len(def.Screens) != 2 {
		t.Fatalf("unexpected definition: %+v", def)
	}

	entity, ok := def.Screens[1].Controls[0].(*control.EntityControl)
	if !ok {
		t.Fatalf("nested control is %T", def.Screens[1].Controls[0])
	}
	if len(entity.Template) != 2 {
		t.Fatalf("template length %d", len(entity.Template))
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseJSON(t *testing.T) {
	def, err := Parse([]byte(jsonFixture))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	opts, ok := def.Screens[0].Controls[0].(*control.OptionsControl)
	if !ok {
		t.Fatalf("control is %T", def.Screens[0].Controls[0])
	}
	if len(opts.Options) != 2 {
		t.Fatalf("options: %+v", opts.Options)
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	cases := map[string]string{
		"document level": strings.Replace(yamlFixture, "version:", "vintage: 1\nversion:", 1),
		"control level":  strings.Replace(yamlFixture, "max: 80", "max: 80\n        placeholder: hm", 1),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(payload)); err == nil {
				t.Fatal("unknown field must be rejected")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n")); err == nil {
		t.Fatal("empty document must be rejected")
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	t.Run("screen", func(t *testing.T) {
		dup := strings.Replace(jsonFixture, `"id": "only"`, `"id": "simple-screen"`, 1)
		dup = strings.Replace(dup, `"screens": [`, `"screens": [
      {"id": "simple-screen", "title": "First", "controls": []},`, 1)
		def, err := Parse([]byte(dup))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if err := def.Validate(); err == nil {
			t.Fatal("duplicate screen id must fail validation")
		}
	})

	t.Run("control across screens", func(t *testing.T) {
		dup := strings.Replace(yamlFixture, "id: q-child-name", "id: q-name", 1)
		def, err := Parse([]byte(dup))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if err := def.Validate(); err == nil {
			t.Fatal("duplicate control id must fail validation")
		}
	})
}

func TestValidateBadControl(t *testing.T) {
	bad := strings.Replace(yamlFixture, `max: now`, `max: someday`, 1)
	def, err := Parse([]byte(bad))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := def.Validate(); err == nil {
		t.Fatal("malformed date bound must fail validation")
	}
}
