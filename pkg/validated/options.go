package validated

import (
	"log/slog"

	"github.com/goliatone/go-validatedinput/internal/logging"
)

// Option configures a Wrapper.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	errorHandler func(error)
	stateChanged func()
	liveness     Liveness
	latestOnly   bool
}

func defaultOptions() options {
	return options{
		logger: logging.NewDiscard(),
	}
}

// WithLogger sets the logger used for task lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithErrorHandler receives validator failures. Without it failures are
// logged at error level and otherwise dropped.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithStateChanged registers a hook invoked after every raw value write and
// every committed validation, so hosts can re-render.
func WithStateChanged(fn func()) Option {
	return func(o *options) {
		o.stateChanged = fn
	}
}

// WithLiveness adds an externally owned mount signal. The wrapper is alive
// only while both this signal and its own context are alive.
func WithLiveness(l Liveness) Option {
	return func(o *options) {
		o.liveness = l
	}
}

// WithLatestOnly discards results of validations that were superseded by a
// newer trigger before they completed.
func WithLatestOnly() Option {
	return func(o *options) {
		o.latestOnly = true
	}
}
