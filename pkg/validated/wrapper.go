package validated

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
)

// Config holds the construction parameters of a Wrapper.
type Config[T any] struct {
	Validator         Validator
	Component         Component[T]
	OnValidatedChange func(value *string)
	DefaultValue      string
	// ClassName is applied to the container around the widget.
	ClassName string
	// Attrs are forwarded unchanged to the widget, minus the reserved names.
	Attrs map[string]any
}

// State is a point-in-time copy of the wrapper state.
type State struct {
	Value  string
	Result Result
}

// Wrapper bridges a widget's synchronous value changes to an asynchronous
// validator. It is safe for concurrent use.
type Wrapper[T any] struct {
	component Component[T]
	className string
	attrs     map[string]any
	opts      options

	ctx    context.Context
	cancel context.CancelFunc

	// commitMu serialises commits against Unmount.
	commitMu sync.Mutex

	mu                sync.Mutex
	value             string
	result            Result
	validator         Validator
	onValidatedChange func(*string)
	triggers          uint64
	generation        uint64

	tasks sync.WaitGroup
}

type task struct {
	value      string
	validator  Validator
	notify     func(*string)
	generation uint64
}

// New constructs and mounts a wrapper. The wrapper stays mounted until
// Unmount is called or ctx is cancelled.
func New[T any](ctx context.Context, cfg Config[T], opts ...Option) (*Wrapper[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Validator == nil {
		return nil, ErrValidatorRequired
	}
	if cfg.Component == nil {
		return nil, ErrComponentRequired
	}
	if cfg.OnValidatedChange == nil {
		return nil, ErrCallbackRequired
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	w := &Wrapper[T]{
		component:         cfg.Component,
		className:         cfg.ClassName,
		attrs:             forwardAttrs(cfg.Attrs),
		opts:              o,
		value:             cfg.DefaultValue,
		result:            Ok(""),
		validator:         cfg.Validator,
		onValidatedChange: cfg.OnValidatedChange,
	}
	w.ctx, w.cancel = context.WithCancel(ctx)

	// The mount trigger. It is always the first one and is never dispatched.
	w.mu.Lock()
	t := w.triggerLocked()
	w.mu.Unlock()
	w.dispatch(t)

	return w, nil
}

// HandleChange records a new raw value from the widget and schedules its
// validation. It never blocks on the validator.
func (w *Wrapper[T]) HandleChange(value string) {
	w.mu.Lock()
	if value == w.value {
		w.mu.Unlock()
		return
	}
	w.value = value
	t := w.triggerLocked()
	w.mu.Unlock()

	w.stateChanged()
	w.dispatch(t)
}

// SetValidator replaces the validator. The replacement counts as a
// dependency change and revalidates the current value.
func (w *Wrapper[T]) SetValidator(v Validator) error {
	if v == nil {
		return ErrValidatorRequired
	}
	w.mu.Lock()
	w.validator = v
	t := w.triggerLocked()
	w.mu.Unlock()

	w.dispatch(t)
	return nil
}

// SetOnValidatedChange replaces the callback. The replacement counts as a
// dependency change and revalidates the current value.
func (w *Wrapper[T]) SetOnValidatedChange(fn func(*string)) error {
	if fn == nil {
		return ErrCallbackRequired
	}
	w.mu.Lock()
	w.onValidatedChange = fn
	t := w.triggerLocked()
	w.mu.Unlock()

	w.dispatch(t)
	return nil
}

// Snapshot returns the current raw value and validation result.
func (w *Wrapper[T]) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Value: w.value, Result: w.result}
}

// Render invokes the delegated widget with the current state. When the
// current result is Invalid the view carries the error annotation.
func (w *Wrapper[T]) Render(ctx context.Context) (View[T], error) {
	if !w.alive() {
		return View[T]{}, ErrUnmounted
	}

	w.mu.Lock()
	value, result := w.value, w.result
	attrs := cloneAttrs(w.attrs)
	w.mu.Unlock()

	props := Props{
		Value:    value,
		IsError:  result.IsError(),
		OnChange: w.HandleChange,
		Attrs:    attrs,
	}

	out, err := w.component.Render(ctx, props)
	if err != nil {
		return View[T]{}, errors.Wrap(err, "validated: render component")
	}

	view := View[T]{
		Widget:    out,
		ClassName: w.className,
	}
	if result.IsError() {
		view.Error = &Annotation{Description: result.Description()}
	}
	return view, nil
}

// Mounted reports whether the wrapper is still alive.
func (w *Wrapper[T]) Mounted() bool {
	return w.alive()
}

// Unmount tears the wrapper down. Validations still in flight keep running
// but their results are discarded. Once Unmount returns no callback will be
// invoked. It must not be called from OnValidatedChange.
func (w *Wrapper[T]) Unmount() {
	w.cancel()
	// Wait out a commit that passed the liveness check before cancel.
	w.commitMu.Lock()
	w.commitMu.Unlock()
}

// Wait blocks until every dispatched validation has finished. It must not
// run concurrently with HandleChange, SetValidator or SetOnValidatedChange:
// a dispatch that starts while Wait is blocked on an idle wrapper is a
// sync.WaitGroup misuse. Hosts call it after their last edit, or from the
// goroutine that makes the edits.
func (w *Wrapper[T]) Wait() {
	w.tasks.Wait()
}

func (w *Wrapper[T]) alive() bool {
	if w.ctx.Err() != nil {
		return false
	}
	if w.opts.liveness != nil && !w.opts.liveness.Alive() {
		return false
	}
	return true
}

// triggerLocked registers a dependency change and returns the task to run,
// or nil when the trigger must be skipped. Callers hold w.mu.
func (w *Wrapper[T]) triggerLocked() *task {
	w.triggers++
	if w.triggers == 1 {
		return nil
	}
	if !w.alive() {
		return nil
	}
	w.generation++
	return &task{
		value:      w.value,
		validator:  w.validator,
		notify:     w.onValidatedChange,
		generation: w.generation,
	}
}

func (w *Wrapper[T]) dispatch(t *task) {
	if t == nil {
		return
	}
	w.opts.logger.Debug("validation dispatched",
		slog.Int("length", len(t.value)),
		slog.Uint64("generation", t.generation),
	)
	w.tasks.Add(1)
	go w.run(t)
}

func (w *Wrapper[T]) run(t *task) {
	defer w.tasks.Done()

	result, err := t.validator(context.WithoutCancel(w.ctx), t.value)
	if err != nil {
		w.fail(t, err)
		return
	}
	w.commit(t, result)
}

func (w *Wrapper[T]) commit(t *task, result Result) {
	w.commitMu.Lock()
	defer w.commitMu.Unlock()

	if !w.alive() {
		w.opts.logger.Debug("validation discarded after unmount",
			slog.Uint64("generation", t.generation),
		)
		return
	}

	w.mu.Lock()
	if w.opts.latestOnly && t.generation != w.generation {
		w.mu.Unlock()
		w.opts.logger.Debug("stale validation discarded",
			slog.Uint64("generation", t.generation),
		)
		return
	}
	w.result = result
	w.mu.Unlock()

	w.opts.logger.Debug("validation committed",
		slog.Uint64("generation", t.generation),
		slog.Bool("valid", result.IsOk()),
	)
	w.stateChanged()

	if result.IsOk() {
		value := t.value
		t.notify(&value)
		return
	}
	t.notify(nil)
}

func (w *Wrapper[T]) fail(t *task, err error) {
	wrapped := errors.Wrap(err, "validated: validator failed")
	if w.opts.errorHandler != nil {
		w.opts.errorHandler(wrapped)
		return
	}
	w.opts.logger.Error("validator failed",
		slog.Uint64("generation", t.generation),
		slog.Any("error", wrapped),
	)
}

func (w *Wrapper[T]) stateChanged() {
	if w.opts.stateChanged != nil {
		w.opts.stateChanged()
	}
}
