package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers invalid input, invalid values and configuration errors.
	ExitUser = 1
	// ExitSystem covers I/O and other environment failures.
	ExitSystem = 2
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// NewUserError wraps err with ExitUser and attaches hint, if any.
func NewUserError(err error, hint string) *ExitError {
	return &ExitError{Err: withHint(err, hint), Code: ExitUser}
}

// NewSystemError wraps err with ExitSystem and attaches hint, if any.
func NewSystemError(err error, hint string) *ExitError {
	return &ExitError{Err: withHint(err, hint), Code: ExitSystem}
}

func withHint(err error, hint string) error {
	if err == nil {
		err = errors.New("unknown error")
	}
	if hint == "" {
		return err
	}
	return errors.WithHint(err, hint)
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to a process exit code. Errors that are not an
// ExitError are system errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Report prints err and its hints to w.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, err.Error())
	for _, hint := range errors.GetAllHints(err) {
		_, _ = color.New(color.FgYellow).Fprintf(w, "Hint: %s\n", hint)
	}
}
