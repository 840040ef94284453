package widgets

import (
	"testing"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	props := validated.Props{Attrs: map[string]any{
		"widget": "custom-input",
		"type":   "password",
	}}

	if got := reg.Resolve(props); got != "custom-input" {
		t.Fatalf("expected explicit widget to win, got %q", got)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		attrs  map[string]any
		expect string
	}{
		{name: "no attrs", attrs: nil, expect: WidgetText},
		{name: "password type", attrs: map[string]any{"type": "password"}, expect: WidgetPassword},
		{name: "secret flag", attrs: map[string]any{"secret": "true"}, expect: WidgetPassword},
		{name: "email type", attrs: map[string]any{"type": "EMAIL"}, expect: WidgetEmail},
		{name: "email input mode", attrs: map[string]any{"inputMode": "email"}, expect: WidgetEmail},
		{name: "multiline", attrs: map[string]any{"multiline": true}, expect: WidgetTextarea},
		{name: "rows", attrs: map[string]any{"rows": 4}, expect: WidgetTextarea},
		{name: "options beat type", attrs: map[string]any{"options": []any{"a", "b"}, "type": "email"}, expect: WidgetSelect},
		{name: "false flag ignored", attrs: map[string]any{"multiline": false}, expect: WidgetText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reg.Resolve(validated.Props{Attrs: tc.attrs})
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestRegister_PriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	always := func(validated.Props) bool { return true }

	reg.Register("low", 10, always)
	reg.Register("first-high", 50, always)
	reg.Register("second-high", 50, always)

	if got := reg.Resolve(validated.Props{}); got != "first-high" {
		t.Fatalf("expected registration order to break ties, got %q", got)
	}
}

func TestRegister_IgnoresInvalidEntries(t *testing.T) {
	reg := &Registry{}
	reg.Register("  ", 10, func(validated.Props) bool { return true })
	reg.Register("nil", 10, nil)

	if got := reg.Resolve(validated.Props{}); got != WidgetText {
		t.Fatalf("expected fallback widget, got %q", got)
	}
}

func TestOptions(t *testing.T) {
	props := validated.Props{Attrs: map[string]any{"options": []any{"a", 1, "b"}}}
	got := Options(props)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected options %v", got)
	}
}
