// Package asset provides handles that serve a placeholder until a background
// load finishes.
package asset

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// LoadFunc produces the final value of a handle.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Handle holds a value that starts as a placeholder and is swapped for the
// loaded one when it becomes available. Safe for concurrent use.
type Handle[T any] struct {
	value  atomic.Pointer[T]
	loaded atomic.Bool
	done   chan struct{}
}

// NewHandle returns a handle serving placeholder.
func NewHandle[T any](placeholder T) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	h.value.Store(&placeholder)
	return h
}

// Get returns the current value.
func (h *Handle[T]) Get() T {
	return *h.value.Load()
}

// Loaded reports whether the loaded value has replaced the placeholder.
func (h *Handle[T]) Loaded() bool {
	return h.loaded.Load()
}

// Done is closed once the load attempt has finished, successfully or not.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Load starts load in the background and returns immediately. The handle
// serves placeholder until load succeeds; on failure it keeps the
// placeholder and logs a warning.
func Load[T any](ctx context.Context, name string, placeholder T, load LoadFunc[T], logger *log.Logger) *Handle[T] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := NewHandle(placeholder)
	go func() {
		defer close(h.done)
		v, err := load(ctx)
		if err != nil {
			logger.Warn("asset load failed, keeping placeholder", "asset", name, "err", err)
			return
		}
		h.value.Store(&v)
		h.loaded.Store(true)
		logger.Debug("asset loaded", "asset", name)
	}()
	return h
}
