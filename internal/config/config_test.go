package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validatedinput/pkg/theme"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Input: InputConfig{Label: "Value"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "validatedinput.yaml", `
validator:
  min_length: 3
  pattern: "^[a-z]+$"
  latency: 150ms
input:
  default: abc
  class_name: signup
  attrs:
    placeholder: your name
log:
  level: debug
`)
	t.Setenv("VALIDATEDINPUT_VALIDATOR_MAX_LENGTH", "8")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Validator.MinLength != 3 || cfg.Validator.MaxLength != 8 {
		t.Fatalf("lengths = %d/%d, want 3/8", cfg.Validator.MinLength, cfg.Validator.MaxLength)
	}
	if cfg.Validator.Latency != 150*time.Millisecond {
		t.Fatalf("latency = %v", cfg.Validator.Latency)
	}
	if cfg.Input.Default != "abc" || cfg.Input.ClassName != "signup" {
		t.Fatalf("unexpected input config %+v", cfg.Input)
	}
	if cfg.Input.Attrs["placeholder"] != "your name" {
		t.Fatalf("attrs = %v", cfg.Input.Attrs)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "negative min", cfg: Config{Validator: ValidatorConfig{MinLength: -1}}},
		{name: "min above max", cfg: Config{Validator: ValidatorConfig{MinLength: 5, MaxLength: 2}}},
		{name: "negative latency", cfg: Config{Validator: ValidatorConfig{Latency: -time.Second}}},
		{name: "negative attempts", cfg: Config{Input: InputConfig{MaxAttempts: -1}}},
		{name: "schema and tag", cfg: Config{Validator: ValidatorConfig{Schema: "s.yaml", Tag: "email"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestBuildValidator_InlineRules(t *testing.T) {
	cfg := Config{Validator: ValidatorConfig{Required: true, MaxLength: 4, Pattern: "^[a-z]*$"}}
	v, err := cfg.BuildValidator()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	cases := map[string]bool{
		"":      false,
		"   ":   false,
		"abc":   true,
		"abcde": false,
		"ABC":   false,
	}
	for input, wantOK := range cases {
		res, err := v(context.Background(), input)
		if err != nil {
			t.Fatalf("validate %q: %v", input, err)
		}
		if res.IsOk() != wantOK {
			t.Fatalf("validate %q ok = %v, want %v (%s)", input, res.IsOk(), wantOK, res.Description())
		}
	}
}

func TestBuildValidator_RequiredRejectsWhitespace(t *testing.T) {
	cfg := Config{Validator: ValidatorConfig{Required: true}}
	v, err := cfg.BuildValidator()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for input, wantOK := range map[string]bool{"": false, " \t ": false, " a ": true} {
		res, err := v(context.Background(), input)
		if err != nil {
			t.Fatalf("validate %q: %v", input, err)
		}
		if res.IsOk() != wantOK {
			t.Fatalf("validate %q ok = %v, want %v (%s)", input, res.IsOk(), wantOK, res.Description())
		}
	}
}

func TestBuildValidator_MessageOverride(t *testing.T) {
	cfg := Config{Validator: ValidatorConfig{MinLength: 3, Message: "too short"}}
	v, err := cfg.BuildValidator()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res, err := v(context.Background(), "ab")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.Description() != "too short" {
		t.Fatalf("description = %q, want too short", res.Description())
	}
}

func TestBuildValidator_SchemaFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.yaml", "type: string\nenum: [red, green]\n")
	cfg := Config{Validator: ValidatorConfig{Schema: path, MinLength: 10}}
	v, err := cfg.BuildValidator()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res, err := v(context.Background(), "red")
	if err != nil || !res.IsOk() {
		t.Fatalf("expected schema to win over inline rules, got %v %v", res, err)
	}
}

func TestBuildValidator_Tag(t *testing.T) {
	cfg := Config{Validator: ValidatorConfig{Tag: "email", MinLength: 50}}
	v, err := cfg.BuildValidator()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res, err := v(context.Background(), "ada@example.com")
	if err != nil || !res.IsOk() {
		t.Fatalf("expected tag to win over inline rules, got %v %v", res, err)
	}
	res, err = v(context.Background(), "ada")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.IsOk() || res.Description() != "must be a valid email" {
		t.Fatalf("result = %v, want invalid email", res)
	}
}

func TestResolveTokens(t *testing.T) {
	cfg := Config{}
	tokens, err := cfg.ResolveTokens()
	if err != nil {
		t.Fatalf("resolve defaults: %v", err)
	}
	if diff := cmp.Diff(theme.Defaults(), tokens); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	path := writeFile(t, t.TempDir(), "theme.yaml", `
name: acme
version: 1.0.0
tokens:
  errorColor: "#111111"
variants:
  dark:
    tokens:
      errorColor: "#eeeeee"
`)
	cfg.Theme = ThemeConfig{Manifest: path, Variant: "dark"}
	tokens, err = cfg.ResolveTokens()
	if err != nil {
		t.Fatalf("resolve manifest: %v", err)
	}
	if tokens.ErrorColor != "#eeeeee" {
		t.Fatalf("errorColor = %q, want #eeeeee", tokens.ErrorColor)
	}

	cfg.Theme.Name = "unregistered"
	tokens, err = cfg.ResolveTokens()
	if err != nil {
		t.Fatalf("resolve unknown theme: %v", err)
	}
	if tokens.ErrorColor != "#eeeeee" {
		t.Fatalf("unknown theme should fall back to the manifest, got %q", tokens.ErrorColor)
	}
}

func TestLogger_RejectsUnknownLevel(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "loud"}}
	if _, err := cfg.Logger(); err == nil {
		t.Fatalf("expected unknown level error")
	}
}
