package html

import (
	"io/fs"
	"strings"

	"github.com/goliatone/go-validatedinput/pkg/theme"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS     fs.FS
	templateDir    string
	tokens         theme.Tokens
	containerClass string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates
// missing from the directory fall back to the bundled ones.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTokens sets the style tokens used by Stylesheet.
func WithTokens(tokens theme.Tokens) Option {
	return func(cfg *config) {
		cfg.tokens = tokens
	}
}

// WithContainerClass overrides the base class of the wrapper container.
func WithContainerClass(class string) Option {
	return func(cfg *config) {
		if class = strings.TrimSpace(class); class != "" {
			cfg.containerClass = class
		}
	}
}
