package form

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"lmsadmin/internal/validation"
)

// Status is the lifecycle state of a form instance.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
	StatusSubmitting
)

// Mode selects between a blank create form and a pre-filled edit form.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

var (
	// ErrNotOpen is returned when Submit is called on a closed form.
	ErrNotOpen = errors.New("form is not open")
)

// Notifier receives the transient user-facing messages a submission emits.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// SubmitFunc performs the remote call for a submission and applies the result
// to the owning collection. It runs only after local validation passed.
type SubmitFunc[T any] func(ctx context.Context, mode Mode, id string, values T) error

// Controller drives one create/edit form through
// Closed -> Open -> Submitting and back. It is the single path by which
// course, lecture and profile records are produced: values pass the
// validation contract before any remote call, field errors keep the form
// open, and a remote failure hands the entered values back untouched.
type Controller[T any] struct {
	mu        sync.Mutex
	entity    string
	status    Status
	mode      Mode
	targetID  string
	values    T
	blank     T
	fieldErrs []validation.FieldError
	submitErr error
	notifier  Notifier
	logger    zerolog.Logger
}

// NewController builds a controller for the named entity. blank supplies the
// declared defaults a create form opens with.
func NewController[T any](entity string, blank T, notifier Notifier, logger zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		entity:   entity,
		blank:    blank,
		values:   blank,
		notifier: notifier,
		logger:   logger.With().Str("form", entity).Logger(),
	}
}

// OpenCreate opens a blank form with the declared defaults.
func (f *Controller[T]) OpenCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusOpen
	f.mode = ModeCreate
	f.targetID = ""
	f.values = f.blank
	f.fieldErrs = nil
	f.submitErr = nil
}

// OpenEdit opens a form pre-filled from an existing record.
func (f *Controller[T]) OpenEdit(id string, prefill T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusOpen
	f.mode = ModeEdit
	f.targetID = id
	f.values = prefill
	f.fieldErrs = nil
	f.submitErr = nil
}

// Close abandons the form, discarding entered values.
func (f *Controller[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusClosed
	f.values = f.blank
	f.fieldErrs = nil
	f.submitErr = nil
}

// SetValues replaces the entered values. It is a no-op unless the form is
// open.
func (f *Controller[T]) SetValues(values T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusOpen {
		return
	}
	f.values = values
}

// Values returns the currently entered values.
func (f *Controller[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Status returns the lifecycle state.
func (f *Controller[T]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Mode returns create/edit.
func (f *Controller[T]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// TargetID returns the id of the record being edited, empty in create mode.
func (f *Controller[T]) TargetID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetID
}

// FieldErrors returns the field-level failures of the last submission
// attempt.
func (f *Controller[T]) FieldErrors() []validation.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// Err returns the remote failure of the last submission attempt, nil when the
// last attempt succeeded or failed locally.
func (f *Controller[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Submit validates the entered values and, when they pass, runs submit. On a
// validation failure the form stays open with field errors and submit is
// never called. On a remote failure the form reopens with the entered values
// preserved and the failure surfaced. On success the form closes and a
// success notification is emitted.
func (f *Controller[T]) Submit(ctx context.Context, submit SubmitFunc[T]) error {
	f.mu.Lock()
	if f.status != StatusOpen {
		f.mu.Unlock()
		return ErrNotOpen
	}
	values := f.values
	mode := f.mode
	id := f.targetID

	if err := validation.Validate(values); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			f.fieldErrs = verr.Fields
			f.submitErr = nil
			f.mu.Unlock()
			return err
		}
		f.mu.Unlock()
		return err
	}
	f.fieldErrs = nil
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := submit(ctx, mode, id, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusOpen
		f.submitErr = err
		f.logger.Warn().Err(err).Msg("submission rejected")
		if f.notifier != nil {
			f.notifier.Error(err.Error())
		}
		return err
	}
	f.status = StatusClosed
	f.values = f.blank
	f.submitErr = nil
	if f.notifier != nil {
		if mode == ModeEdit {
			f.notifier.Success(f.entity + " updated")
		} else {
			f.notifier.Success(f.entity + " created")
		}
	}
	return nil
}
