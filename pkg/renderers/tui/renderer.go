package tui

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/goliatone/go-validatedinput/internal/logging"
	"github.com/goliatone/go-validatedinput/pkg/validated"
	"github.com/goliatone/go-validatedinput/pkg/widgets"
)

// Config describes one validated prompt.
type Config struct {
	Validator    validated.Validator
	DefaultValue string
	// Label is the prompt message. An explicit "label" attr wins.
	Label string
	// Attrs are forwarded to the widget; "hint", "options", "secret",
	// "multiline" and "widget" shape the prompt.
	Attrs map[string]any
	// OnValidatedChange observes every committed validation.
	OnValidatedChange func(value *string)
}

// Session hosts a validated.Wrapper in a prompt loop: ask, feed the answer to
// the wrapper, wait for the commit, print the annotation, repeat until a
// valid value is committed.
type Session struct {
	driver      PromptDriver
	out         io.Writer
	theme       Theme
	maxAttempts int
	color       bool
	logger      *slog.Logger
	widgets     *widgets.Registry
}

// NewSession constructs a session with the survey driver.
func NewSession(options ...Option) *Session {
	s := &Session{
		out:     os.Stdout,
		theme:   DefaultTheme,
		color:   !color.NoColor,
		logger:  logging.NewDiscard(),
		widgets: widgets.NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// Component renders the prompt message for the current props.
func (s *Session) Component() validated.Component[string] {
	return validated.ComponentFunc[string](func(ctx context.Context, props validated.Props) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		message := strings.TrimSpace(props.StringAttr("label"))
		if message == "" {
			message = "Value"
		}
		if s.theme.PromptPrefix != "" {
			message = s.theme.PromptPrefix + " " + message
		}
		return message, nil
	})
}

type outcome struct {
	mu        sync.Mutex
	committed bool
	value     *string
	failure   error
}

func (o *outcome) reset() {
	o.mu.Lock()
	o.committed, o.value, o.failure = false, nil, nil
	o.mu.Unlock()
}

func (o *outcome) read() (bool, *string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.committed, o.value, o.failure
}

// Run prompts until a valid value is committed and returns it.
func (s *Session) Run(ctx context.Context, cfg Config) (string, error) {
	if cfg.Validator == nil {
		return "", validated.ErrValidatorRequired
	}

	attrs := maps.Clone(cfg.Attrs)
	if attrs == nil {
		attrs = map[string]any{}
	}
	if _, ok := attrs["label"]; !ok && cfg.Label != "" {
		attrs["label"] = cfg.Label
	}

	state := &outcome{}
	notify := func(value *string) {
		state.mu.Lock()
		state.committed = true
		state.value = value
		state.mu.Unlock()
		if cfg.OnValidatedChange != nil {
			cfg.OnValidatedChange(value)
		}
	}

	w, err := validated.New(ctx, validated.Config[string]{
		Validator:         cfg.Validator,
		Component:         s.Component(),
		OnValidatedChange: notify,
		DefaultValue:      cfg.DefaultValue,
		Attrs:             attrs,
	},
		validated.WithLogger(s.logger),
		validated.WithErrorHandler(func(err error) {
			state.mu.Lock()
			state.failure = err
			state.mu.Unlock()
		}),
	)
	if err != nil {
		return "", err
	}
	defer func() {
		w.Unmount()
		w.Wait()
	}()

	kind := s.widgets.Resolve(validated.Props{Attrs: attrs})
	for attempt := 1; ; attempt++ {
		view, err := w.Render(ctx)
		if err != nil {
			return "", err
		}
		if view.HasError() {
			if err := s.driver.Info(ctx, s.annotate(view.Error.Description)); err != nil {
				return "", err
			}
		}

		current := w.Snapshot().Value
		answer, err := s.ask(ctx, kind, view.Widget, current, attrs)
		if err != nil {
			return "", err
		}

		state.reset()
		if answer == current {
			// An unchanged answer is not a value change; re-issuing the
			// validator still validates it.
			if err := w.SetValidator(cfg.Validator); err != nil {
				return "", err
			}
		} else {
			w.HandleChange(answer)
		}
		w.Wait()

		committed, value, failure := state.read()
		if failure != nil {
			return "", failure
		}
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "tui: session ended")
		}
		if committed && value != nil {
			if err := s.driver.Info(ctx, s.info("accepted")); err != nil {
				return "", err
			}
			return *value, nil
		}
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return "", errors.WithHintf(ErrTooManyAttempts, "gave up after %d attempts", attempt)
		}
	}
}

func (s *Session) ask(ctx context.Context, kind, message, current string, attrs map[string]any) (string, error) {
	props := validated.Props{Value: current, Attrs: attrs}
	help := props.StringAttr("hint")

	switch kind {
	case widgets.WidgetPassword:
		return s.driver.Password(ctx, InputConfig{Message: message, Help: help})
	case widgets.WidgetTextarea:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})
	case widgets.WidgetSelect:
		options := widgets.Options(props)
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: indexOf(options, current),
			Help:         help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", ErrNoSelection
		}
		return options[idx], nil
	default:
		return s.driver.Input(ctx, InputConfig{Message: message, Default: current, Help: help})
	}
}

func (s *Session) annotate(description string) string {
	c := color.New(color.FgRed)
	if !s.color {
		c.DisableColor()
	}
	return c.Sprint(prefixed(s.theme.ErrorPrefix, description))
}

func (s *Session) info(msg string) string {
	c := color.New(color.FgGreen)
	if !s.color {
		c.DisableColor()
	}
	return c.Sprint(prefixed(s.theme.InfoPrefix, msg))
}

func prefixed(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	return prefix + " " + msg
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
