package tui

import "github.com/cockroachdb/errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when no valid value was committed within
	// the configured number of prompts.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
	// ErrNoSelection is returned when a select prompt yields no option.
	ErrNoSelection = errors.New("tui: no option selected")
)
