package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is used for the config file name and the env prefix.
const AppName = "validatedinput"

// ErrInvalidConfig is returned when Validate rejects a configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the CLI configuration.
type Config struct {
	Theme     ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Validator ValidatorConfig `mapstructure:"validator" yaml:"validator"`
	Input     InputConfig     `mapstructure:"input" yaml:"input"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// ThemeConfig selects the style tokens for the error annotation.
type ThemeConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Variant  string `mapstructure:"variant" yaml:"variant"`
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
}

// ValidatorConfig describes the validator. Schema, when set, is a YAML or
// JSON OpenAPI string schema and the inline rules are ignored. Tag is a
// go-playground/validator rule list used when no schema is set.
type ValidatorConfig struct {
	Schema    string        `mapstructure:"schema" yaml:"schema"`
	Tag       string        `mapstructure:"tag" yaml:"tag"`
	Required  bool          `mapstructure:"required" yaml:"required"`
	MinLength int           `mapstructure:"min_length" yaml:"min_length"`
	MaxLength int           `mapstructure:"max_length" yaml:"max_length"`
	Pattern   string        `mapstructure:"pattern" yaml:"pattern"`
	Message   string        `mapstructure:"message" yaml:"message"`
	Latency   time.Duration `mapstructure:"latency" yaml:"latency"`
}

// InputConfig describes the input being validated.
type InputConfig struct {
	Default     string         `mapstructure:"default" yaml:"default"`
	Label       string         `mapstructure:"label" yaml:"label"`
	ClassName   string         `mapstructure:"class_name" yaml:"class_name"`
	MaxAttempts int            `mapstructure:"max_attempts" yaml:"max_attempts"`
	Attrs       map[string]any `mapstructure:"attrs" yaml:"attrs"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// New returns a viper instance with defaults, search paths and env binding
// (VALIDATEDINPUT_VALIDATOR_MIN_LENGTH, ...).
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(AppName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.manifest", "")
	v.SetDefault("validator.schema", "")
	v.SetDefault("validator.tag", "")
	v.SetDefault("validator.required", false)
	v.SetDefault("validator.min_length", 0)
	v.SetDefault("validator.max_length", 0)
	v.SetDefault("validator.pattern", "")
	v.SetDefault("validator.message", "")
	v.SetDefault("validator.latency", "0s")
	v.SetDefault("input.default", "")
	v.SetDefault("input.label", "Value")
	v.SetDefault("input.class_name", "")
	v.SetDefault("input.max_attempts", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	return v
}

// Load reads the config file and unmarshals it. An explicit path must exist;
// a missing file in the default search path leaves the defaults in place.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "config: read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	v := c.Validator
	switch {
	case v.MinLength < 0:
		return errors.Wrap(ErrInvalidConfig, "validator.min_length must not be negative")
	case v.MaxLength < 0:
		return errors.Wrap(ErrInvalidConfig, "validator.max_length must not be negative")
	case v.MaxLength > 0 && v.MinLength > v.MaxLength:
		return errors.Wrapf(ErrInvalidConfig, "validator.min_length %d exceeds max_length %d", v.MinLength, v.MaxLength)
	case v.Schema != "" && v.Tag != "":
		return errors.Wrap(ErrInvalidConfig, "validator.schema and validator.tag are mutually exclusive")
	case v.Latency < 0:
		return errors.Wrap(ErrInvalidConfig, "validator.latency must not be negative")
	case c.Input.MaxAttempts < 0:
		return errors.Wrap(ErrInvalidConfig, "input.max_attempts must not be negative")
	}
	return nil
}
