package theme

import (
	"regexp"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Token names read from a go-theme manifest.
const (
	TokenLabelFontSize   = "labelFontSize"
	TokenLabelLineHeight = "labelLineHeight"
	TokenErrorColor      = "errorColor"
)

// Tokens are the style values consumed by the error annotation. They have no
// behavioural effect on validation.
type Tokens struct {
	LabelFontSize   string `json:"labelFontSize" yaml:"labelFontSize"`
	LabelLineHeight string `json:"labelLineHeight" yaml:"labelLineHeight"`
	ErrorColor      string `json:"errorColor" yaml:"errorColor"`
}

// Defaults returns the built-in token set.
func Defaults() Tokens {
	return Tokens{
		LabelFontSize:   "13px",
		LabelLineHeight: "18px",
		ErrorColor:      "#e42f2f",
	}
}

var cssValue = regexp.MustCompile(`^[#a-zA-Z0-9.%(), -]+$`)

// FromMap picks the annotation tokens out of a token map. Missing or unsafe
// values fall back to Defaults.
func FromMap(tokens map[string]string) Tokens {
	out := Defaults()
	pick := func(key string, dst *string) {
		value := strings.TrimSpace(tokens[key])
		if value == "" || !cssValue.MatchString(value) {
			return
		}
		*dst = value
	}
	pick(TokenLabelFontSize, &out.LabelFontSize)
	pick(TokenLabelLineHeight, &out.LabelLineHeight)
	pick(TokenErrorColor, &out.ErrorColor)
	return out
}

// FromRendererConfig reads tokens from a resolved go-theme renderer config.
func FromRendererConfig(cfg *gotheme.RendererConfig) Tokens {
	if cfg == nil {
		return Defaults()
	}
	return FromMap(cfg.Tokens)
}

// Map returns the tokens keyed by their manifest names.
func (t Tokens) Map() map[string]string {
	return map[string]string{
		TokenLabelFontSize:   t.LabelFontSize,
		TokenLabelLineHeight: t.LabelLineHeight,
		TokenErrorColor:      t.ErrorColor,
	}
}

// Stylesheet returns the error annotation rules scoped under scope, which is
// a CSS selector for the wrapper container.
func Stylesheet(t Tokens, scope string) string {
	scope = strings.TrimSpace(scope)
	selector := ".error"
	if scope != "" {
		selector = scope + " .error"
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	writeDecl(&b, "display", "block")
	writeDecl(&b, "margin-top", "-10px")
	writeDecl(&b, "font-size", t.LabelFontSize)
	writeDecl(&b, "line-height", t.LabelLineHeight)
	writeDecl(&b, "color", t.ErrorColor)
	b.WriteString("}\n")
	return b.String()
}

// RootVars renders the tokens as go-theme CSS variables (--errorColor, ...)
// in a :root block, sorted by name.
func RootVars(t Tokens) string {
	vars := gotheme.Manifest{Tokens: t.Map()}.CSSVariables("", "")
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		writeDecl(&b, key, vars[key])
	}
	b.WriteString("}\n")
	return b.String()
}

func writeDecl(b *strings.Builder, prop, value string) {
	b.WriteString("  ")
	b.WriteString(prop)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}
