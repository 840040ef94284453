// Package commands implements the validatedinput CLI commands.
package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-validatedinput/internal/cli"
	"github.com/goliatone/go-validatedinput/internal/config"
	"github.com/goliatone/go-validatedinput/internal/logging"
	"github.com/goliatone/go-validatedinput/pkg/validated"
)

const version = "0.1.0"

type app struct {
	viper      *viper.Viper
	configPath string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{viper: config.New()}

	root := &cobra.Command{
		Use:   "validatedinput",
		Short: "Validate input values asynchronously and render them",
		Long: `validatedinput wraps an input in an asynchronous validator.

Values are validated on every change after the first, results are reported
as the validated value or as an inline error annotation.`,
		Example: `  # Prompt until a valid value is entered
  validatedinput prompt --min-length 3

  # Render the HTML for a value after validation
  validatedinput render "ab" --min-length 3

  # Check values, exit status 1 when any is invalid
  validatedinput check alice bo --min-length 3`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default ./validatedinput.yaml)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")
	flags.Int("min-length", 0, "minimum length in runes")
	flags.Int("max-length", 0, "maximum length in runes")
	flags.String("pattern", "", "regular expression the value must match")
	flags.Bool("required", false, "reject blank values")
	flags.String("message", "", "description shown for any invalid value")
	flags.String("schema", "", "YAML or JSON OpenAPI string schema file")
	flags.Duration("latency", 0, "artificial validator latency")
	flags.String("theme-manifest", "", "YAML theme manifest with annotation tokens")
	flags.String("theme-variant", "", "theme variant")
	flags.String("label", "", "input label")
	flags.String("default", "", "initial value")

	bindings := map[string]string{
		"log.level":            "log-level",
		"log.format":           "log-format",
		"validator.min_length": "min-length",
		"validator.max_length": "max-length",
		"validator.pattern":    "pattern",
		"validator.required":   "required",
		"validator.message":    "message",
		"validator.schema":     "schema",
		"validator.latency":    "latency",
		"theme.manifest":       "theme-manifest",
		"theme.variant":        "theme-variant",
		"input.label":          "label",
		"input.default":        "default",
	}
	for key, flag := range bindings {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newPromptCommand(a),
		newRenderCommand(a),
		newCheckCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return cli.NewUserError(err, "check the config file and flags")
	}
	logger, err := cfg.Logger(func(lc *logging.Config) {
		lc.Output = cmd.ErrOrStderr()
	})
	if err != nil {
		return cli.NewUserError(err, "use --log-level debug|info|warn|error and --log-format text|json")
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) validator() (validated.Validator, error) {
	v, err := a.cfg.BuildValidator()
	if err != nil {
		return nil, cli.NewUserError(err, "check the validator flags or schema file")
	}
	return v, nil
}

// submit feeds value to the wrapper and waits for its validation. An
// unchanged value is revalidated by re-issuing the validator.
func submit[T any](w *validated.Wrapper[T], v validated.Validator, value string) error {
	if w.Snapshot().Value == value {
		if err := w.SetValidator(v); err != nil {
			return err
		}
	} else {
		w.HandleChange(value)
	}
	w.Wait()
	return nil
}

// failures collects validator errors reported by a wrapper.
type failures struct {
	mu  sync.Mutex
	err error
}

func (f *failures) record(err error) {
	f.mu.Lock()
	f.err = errors.CombineErrors(f.err, err)
	f.mu.Unlock()
}

func (f *failures) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
