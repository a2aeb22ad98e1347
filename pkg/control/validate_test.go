package control

import (
	"errors"
	"testing"

	"github.com/goliatone/go-interview/pkg/condition"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestDesignControlValidation(t *testing.T) {
	cases := []struct {
		name    string
		ctrl    Control
		wantErr bool
	}{
		{
			name: "valid time increments",
			ctrl: TimeControl{Base: Base{ID: "t", Kind: KindTime}, MinutesIncrement: 15},
		},
		{
			name:    "increment must divide 60",
			ctrl:    TimeControl{Base: Base{ID: "t", Kind: KindTime}, MinutesIncrement: 7},
			wantErr: true,
		},
		{
			name: "date bounds accept the now sentinel",
			ctrl: DateControl{Base: Base{ID: "d", Kind: KindDate}, Min: "1900-01-01", Max: "now"},
		},
		{
			name:    "date bound must be a date literal",
			ctrl:    DateControl{Base: Base{ID: "d", Kind: KindDate}, Min: "01/01/1900"},
			wantErr: true,
		},
		{
			name:    "currency max below min",
			ctrl:    CurrencyControl{Base: Base{ID: "c", Kind: KindCurrency}, Min: floatPtr(10), Max: floatPtr(1)},
			wantErr: true,
		},
		{
			name:    "file max below one",
			ctrl:    FileControl{Base: Base{ID: "f", Kind: KindFile}, Max: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "image needs a data uri",
			ctrl:    ImageControl{Base: Base{ID: "i", Kind: KindImage}, Data: "http://example.com/x.png"},
			wantErr: true,
		},
		{
			name:    "typography style outside the enum",
			ctrl:    TypographyControl{Base: Base{ID: "ty", Kind: KindTypography}, Style: "h7", Text: "x"},
			wantErr: true,
		},
		{
			name:    "unknown text variation",
			ctrl:    TextControl{Base: Base{ID: "tx", Kind: KindText}, Variation: "phone"},
			wantErr: true,
		},
		{
			name:    "option value must be scalar",
			ctrl:    OptionsControl{Base: Base{ID: "o", Kind: KindOptions}, Options: []Option{{Value: 3.14}}},
			wantErr: true,
		},
		{
			name:    "mismatched tag",
			ctrl:    BooleanControl{Base: Base{ID: "b", Kind: KindText}},
			wantErr: true,
		},
		{
			name:    "missing id",
			ctrl:    BooleanControl{Base: Base{Kind: KindBoolean}},
			wantErr: true,
		},
		{
			name:    "repeating filter outside table mode",
			ctrl:    RepeatingContainer{Base: Base{ID: "r", Kind: KindRepeating}, Entity: "child", Filter: "age"},
			wantErr: true,
		},
		{
			name: "repeating filter in table mode",
			ctrl: RepeatingContainer{Base: Base{ID: "r", Kind: KindRepeating}, Entity: "child", Display: DisplayTable, Filter: "age"},
		},
		{
			name:    "dynamic switch needs a condition",
			ctrl:    SwitchContainer{Base: Base{ID: "s", Kind: KindSwitch}, Mode: SwitchDynamic},
			wantErr: true,
		},
		{
			name: "static switch without condition",
			ctrl: SwitchContainer{Base: Base{ID: "s", Kind: KindSwitch}, Mode: SwitchStatic},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ctrl.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSwitchValidatesItsCondition(t *testing.T) {
	bad := &condition.Expression{Type: condition.Equals, Elements: []condition.Element{condition.Attribute("a")}}
	ctrl := SwitchContainer{Base: Base{ID: "s", Kind: KindSwitch}, Mode: SwitchDynamic, Condition: bad}
	if err := ctrl.Validate(); err == nil {
		t.Fatal("expected condition validation to propagate")
	}
}

func TestEntitySelfNestingRejected(t *testing.T) {
	inner := EntityControl{
		Base:     Base{ID: "inner", Kind: KindEntity, Attribute: "children"},
		Template: ControlList{},
	}
	outer := EntityControl{
		Base:     Base{ID: "outer", Kind: KindEntity, Attribute: "children"},
		Template: ControlList{inner},
	}
	err := outer.Validate()
	if err == nil {
		t.Fatal("expected self-reference error")
	}
	if !errors.Is(err, errSelfReference) {
		t.Fatalf("got %v, want self-reference error", err)
	}
}

func TestEntityNestingThroughSwitchRejected(t *testing.T) {
	repeat := RepeatingContainer{
		Base:   Base{ID: "again", Kind: KindRepeating},
		Entity: "child",
		Controls: ControlList{
			SwitchContainer{
				Base: Base{ID: "sw", Kind: KindSwitch},
				OutcomeTrue: ControlList{
					RepeatingContainer{Base: Base{ID: "deep", Kind: KindRepeating}, Entity: "child"},
				},
			},
		},
	}
	if err := repeat.Validate(); err == nil {
		t.Fatal("switch containers are not instance boundaries")
	}
}

func TestDistinctEntityNestingAllowed(t *testing.T) {
	nested := EntityControl{
		Base: Base{ID: "outer", Kind: KindEntity, Attribute: "households"},
		Template: ControlList{
			EntityControl{
				Base:     Base{ID: "inner", Kind: KindEntity, Attribute: "members"},
				Template: ControlList{TextControl{Base: Base{ID: "name", Kind: KindText}}},
			},
		},
	}
	if err := nested.Validate(); err != nil {
		t.Fatalf("distinct entities must nest: %v", err)
	}
}

func TestSanitizeDisplayText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Plain label", want: "Plain label"},
		{in: "<b>Bold</b> label", want: "Bold label"},
		{in: "<script>alert(1)</script>", want: ""},
		{in: "  padded  ", want: "padded"},
	}
	for _, tc := range cases {
		if got := SanitizeDisplayText(tc.in); got != tc.want {
			t.Fatalf("SanitizeDisplayText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
