package validators

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

func TestStringRules(t *testing.T) {
	pattern, err := Pattern(`^[a-z]+$`, "lowercase only")
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}

	cases := []struct {
		name      string
		validator func(context.Context, string) (string, bool)
		input     string
		wantOK    bool
		wantDesc  string
	}{
		{name: "required blank", validator: run(Required("")), input: "  ", wantDesc: "required"},
		{name: "required set", validator: run(Required("")), input: "x", wantOK: true},
		{name: "non blank whitespace", validator: run(RequireNonBlank("", MaxLength(5, ""))), input: " \t", wantDesc: "required"},
		{name: "non blank delegates", validator: run(RequireNonBlank("", MaxLength(2, ""))), input: "abc", wantDesc: "max length 2"},
		{name: "non blank ok", validator: run(RequireNonBlank("", MaxLength(5, ""))), input: "abc", wantOK: true},
		{name: "min short", validator: run(MinLength(3, "too short")), input: "ab", wantDesc: "too short"},
		{name: "min runes", validator: run(MinLength(3, "")), input: "żółw", wantOK: true},
		{name: "max long", validator: run(MaxLength(2, "")), input: "abc", wantDesc: "max length 2"},
		{name: "pattern miss", validator: run(pattern), input: "ABC", wantDesc: "lowercase only"},
		{name: "pattern hit", validator: run(pattern), input: "abc", wantOK: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc, ok := tc.validator(context.Background(), tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (desc %q)", ok, tc.wantOK, desc)
			}
			if !ok && desc != tc.wantDesc {
				t.Fatalf("description = %q, want %q", desc, tc.wantDesc)
			}
		})
	}
}

func TestPattern_InvalidExpression(t *testing.T) {
	if _, err := Pattern("([", ""); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestFunc_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Required("")(ctx, "x"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLatencyFor_DelaysOnlyListedValues(t *testing.T) {
	v := LatencyFor(map[string]time.Duration{"slow": 30 * time.Millisecond}, 0, Required(""))

	start := time.Now()
	if _, err := v(context.Background(), "fast"); err != nil {
		t.Fatalf("validate: %v", err)
	}
	fast := time.Since(start)

	start = time.Now()
	if _, err := v(context.Background(), "slow"); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if slow := time.Since(start); slow < 30*time.Millisecond || slow <= fast {
		t.Fatalf("expected slow value to be delayed, took %v (fast %v)", slow, fast)
	}
}

func run(v validated.Validator) func(context.Context, string) (string, bool) {
	return func(ctx context.Context, value string) (string, bool) {
		res, err := v(ctx, value)
		if err != nil {
			return err.Error(), false
		}
		return res.Description(), res.IsOk()
	}
}

func TestWithDescription(t *testing.T) {
	v := WithDescription("pick a longer name", MinLength(3, "too short"))

	res, err := v(context.Background(), "ab")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.Description() != "pick a longer name" {
		t.Fatalf("description = %q", res.Description())
	}

	res, err = v(context.Background(), "abc")
	if err != nil || !res.IsOk() {
		t.Fatalf("expected abc to pass, got %v, %v", res, err)
	}
}
