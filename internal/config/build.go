package config

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-validatedinput/internal/logging"
	"github.com/goliatone/go-validatedinput/pkg/theme"
	"github.com/goliatone/go-validatedinput/pkg/validated"
	"github.com/goliatone/go-validatedinput/pkg/validators"
)

// BuildValidator turns the validator section into one validated.Validator.
// Inline length and pattern rules are expressed as a single OpenAPI string
// schema; required rejects blank and whitespace only values before it.
func (c *Config) BuildValidator() (validated.Validator, error) {
	vc := c.Validator

	if vc.Tag != "" {
		v, err := validators.Tag(vc.Tag, vc.Message)
		if err != nil {
			return nil, errors.Wrap(err, "config: build validator")
		}
		return validators.WithLatency(vc.Latency, v), nil
	}

	var schema *openapi3.Schema
	if vc.Schema != "" {
		loaded, err := validators.LoadSchema(vc.Schema)
		if err != nil {
			return nil, err
		}
		schema = loaded
	} else {
		schema = openapi3.NewStringSchema()
		if vc.MinLength > 0 {
			schema.WithMinLength(int64(vc.MinLength))
		}
		if vc.MaxLength > 0 {
			schema.WithMaxLength(int64(vc.MaxLength))
		}
		if vc.Pattern != "" {
			schema.WithPattern(vc.Pattern)
		}
	}

	v, err := validators.FromSchema(schema)
	if err != nil {
		return nil, errors.Wrap(err, "config: build validator")
	}
	if vc.Required && vc.Schema == "" {
		v = validators.RequireNonBlank("", v)
	}
	v = validators.WithDescription(vc.Message, v)
	return validators.WithLatency(vc.Latency, v), nil
}

// ResolveTokens loads the configured manifest, if any, and resolves tokens.
func (c *Config) ResolveTokens() (theme.Tokens, error) {
	if c.Theme.Manifest == "" {
		return theme.Defaults(), nil
	}
	manifest, err := theme.LoadManifest(c.Theme.Manifest)
	if err != nil {
		return theme.Defaults(), err
	}
	selector, err := theme.NewSelector(c.Theme.Variant, manifest)
	if err != nil {
		return theme.Defaults(), err
	}
	return theme.Resolve(selector, c.Theme.Name, c.Theme.Variant)
}

// Logger builds the logger described by the log section.
func (c *Config) Logger(opts ...func(*logging.Config)) (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, err
	}
	cfg := logging.Config{Level: level, Format: format}
	for _, opt := range opts {
		opt(&cfg)
	}
	return logging.New(cfg), nil
}
