package preview

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/goliatone/go-interview/pkg/attr"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/google/go-cmp/cmp"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	info      []string
	inputPos  int
	selectPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val != "" && cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.info = append(s.info, msg)
	return nil
}

func decodeScreen(t *testing.T, raw string) session.Screen {
	t.Helper()
	var screen session.Screen
	if err := json.Unmarshal([]byte(raw), &screen); err != nil {
		t.Fatalf("decode screen: %v", err)
	}
	return screen
}

func TestRunCollectsAnswers(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "About you",
	  "controls": [
	    {"id": "q1", "type": "boolean", "attribute": "married"},
	    {"id": "q2", "type": "text", "attribute": "name", "max": 40},
	    {"id": "q3", "type": "currency", "attribute": "income", "symbol": "GBP", "min": 0},
	    {"id": "q4", "type": "options", "attribute": "colour",
	     "options": [{"label": "Red", "value": "red"}, {"label": "Blue", "value": "blue"}]},
	    {"id": "q5", "type": "typography", "style": "h1", "text": "<b>Done</b>"}
	  ]
	}`)

	driver := &stubDriver{
		inputs:    []string{"Ada", "1200.50"},
		selectIdx: []int{0, 1},
	}
	p := New(WithPromptDriver(driver))

	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := attr.Values{
		"married": attr.Bool(true),
		"name":    attr.String("Ada"),
		"income":  attr.Number(1200.50),
		"colour":  attr.String("blue"),
	}
	if diff := cmp.Diff(want, got.Values, cmp.AllowUnexported(attr.Value{})); diff != "" {
		t.Fatalf("answers (-want +got):\n%s", diff)
	}
	if len(driver.info) != 2 || driver.info[1] != "Done" {
		t.Fatalf("info output: %v", driver.info)
	}
}

func TestRunBooleanChoices(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [
	    {"id": "q1", "type": "boolean", "attribute": "married"},
	    {"id": "q2", "type": "boolean", "attribute": "employed"},
	    {"id": "q3", "type": "boolean", "attribute": "retired"}
	  ]
	}`)

	p := New(WithPromptDriver(&stubDriver{selectIdx: []int{0, 1, 2}}))
	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if v, _ := got.Values["married"].AsBool(); !v {
		t.Fatalf("married: %v", got.Values["married"])
	}
	if v, _ := got.Values["employed"].AsBool(); v {
		t.Fatalf("employed: %v", got.Values["employed"])
	}
	if _, ok := got.Values["retired"]; ok {
		t.Fatal("skipped boolean must leave the attribute unset")
	}
}

func TestRunSkipsEmptyAnswers(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [{"id": "q1", "type": "text", "attribute": "name"}]
	}`)

	p := New(WithPromptDriver(&stubDriver{inputs: []string{""}}))
	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got.Values) != 0 {
		t.Fatalf("empty answer must stay absent, got %v", got.Values)
	}
}

func TestRunValidatesInput(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [{"id": "q1", "type": "date", "attribute": "dob", "max": "2026-01-01"}]
	}`)

	p := New(WithPromptDriver(&stubDriver{inputs: []string{"2030-05-05"}}))
	if _, err := p.Run(context.Background(), screen); err == nil {
		t.Fatal("date past the hydrated bound must fail")
	}
}

func TestRunNormalisesClockAnswers(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [
	    {"id": "q1", "type": "time", "attribute": "wakeup", "amPmFormat": true},
	    {"id": "q2", "type": "datetime", "attribute": "appointment", "amPmFormat": true},
	    {"id": "q3", "type": "time", "attribute": "lunch"}
	  ]
	}`)

	driver := &stubDriver{inputs: []string{"9:15:00 AM", "2026-02-03 4:30:00 PM", "12:05:00"}}
	p := New(WithPromptDriver(driver))

	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]string
	if err := json.Unmarshal(payload, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["wakeup"] != "09:15:00" {
		t.Fatalf("wakeup on the wire = %q, want 24 hour form", wire["wakeup"])
	}
	if wire["appointment"] != "2026-02-03 16:30:00" {
		t.Fatalf("appointment on the wire = %q, want 24 hour form", wire["appointment"])
	}
	if wire["lunch"] != "12:05:00" {
		t.Fatalf("lunch on the wire = %q", wire["lunch"])
	}
}

func TestRunEmitsPlaceholderInstances(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [{"id": "q1", "type": "number_of_instances", "attribute": "children",
	    "entity": "child", "min": 0, "max": 5}]
	}`)

	p := New(WithPromptDriver(&stubDriver{inputs: []string{"2"}}))
	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows, ok := got.Values["children"].AsRows()
	if !ok || len(rows) != 2 {
		t.Fatalf("rows: %v %v", rows, ok)
	}
	if id, _ := rows[1][attr.InstanceIDKey].AsString(); id != "child/1" {
		t.Fatalf("placeholder identity: %v", rows[1])
	}
}

func TestRunWalksContainers(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [
	    {"id": "s1", "type": "switch_container", "attribute": "has_children", "branch": "true",
	     "outcome_true": [
	       {"id": "e1", "type": "entity", "attribute": "child",
	        "template": [{"id": "t1", "type": "text", "attribute": "child_name"}],
	        "instances": [
	          {"@id": "child/0", "controls": [{"id": "t1", "type": "text", "attribute": "child_name"}]},
	          {"@id": "child/1", "controls": [{"id": "t1", "type": "text", "attribute": "child_name"}]}
	        ]}
	     ],
	     "outcome_false": [{"id": "x1", "type": "text", "attribute": "never_asked"}]}
	  ]
	}`)

	driver := &stubDriver{inputs: []string{"June", "Theo"}}
	p := New(WithPromptDriver(driver))

	got, err := p.Run(context.Background(), screen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows, ok := got.Values["child"].AsRows()
	if !ok || len(rows) != 2 {
		t.Fatalf("rows: %v %v", rows, ok)
	}
	if name, _ := rows[1]["child_name"].AsString(); name != "Theo" {
		t.Fatalf("second row: %v", rows[1])
	}
	if _, ok := got.Values["never_asked"]; ok {
		t.Fatal("false branch must not be prompted")
	}
}

func TestRunRejectsBadFileRefs(t *testing.T) {
	screen := decodeScreen(t, `{
	  "id": "scr", "title": "",
	  "controls": [{"id": "q1", "type": "file", "attribute": "receipt"}]
	}`)

	p := New(WithPromptDriver(&stubDriver{inputs: []string{"receipt.pdf"}}))
	if _, err := p.Run(context.Background(), screen); err == nil {
		t.Fatal("reference without the data:id= prefix must fail")
	}
}
