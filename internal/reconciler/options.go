package reconciler

import (
	"log/slog"
	"time"
)

type Option func(*Reconciler)

// WithHistory loads every completion of the owner instead of today's only.
// Used by the streak screen.
func WithHistory() Option {
	return func(r *Reconciler) {
		r.history = true
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOnChange registers a callback invoked with a fresh snapshot after every
// change. It runs outside the reconciler's lock.
func WithOnChange(fn func(Snapshot)) Option {
	return func(r *Reconciler) {
		r.onChange = fn
	}
}

// WithOnError registers a callback receiving a user-facing message for every
// failed action.
func WithOnError(fn func(msg string)) Option {
	return func(r *Reconciler) {
		r.onError = fn
	}
}
