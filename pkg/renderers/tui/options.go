package tui

import (
	"io"
	"log/slog"
)

// Theme holds the message prefixes printed around prompts.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme is used when WithTheme is not supplied.
var DefaultTheme = Theme{
	InfoPrefix:  "i",
	ErrorPrefix: "x",
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints info lines.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithMaxAttempts caps the number of prompts. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithColor toggles ANSI colour in annotations.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithLogger sets the logger handed to the wrapper.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
