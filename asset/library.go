package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHandle is returned for a handle the library never issued
	ErrUnknownHandle = errors.New("asset: unknown handle")

	// ErrClosed is returned by any lookup after Close
	ErrClosed = errors.New("asset: library closed")

	// ErrDuplicateName is returned when registering a name twice
	ErrDuplicateName = errors.New("asset: duplicate name")
)

// Handle is an opaque reference to a registered asset, zero is never valid
type Handle uint32

// IsValid reports whether h could have been issued by a library
func (h Handle) IsValid() bool {
	return h != 0
}

type entry[T any] struct {
	name    string
	value   T
	release func(T) error
}

// Library owns registered assets from startup until Close
// Handles are dense indices offset by one
type Library[T any] struct {
	entries []entry[T]
	byName  map[string]Handle
	closed  bool
}

// NewLibrary creates an empty library
func NewLibrary[T any]() *Library[T] {
	return &Library[T]{
		byName: make(map[string]Handle),
	}
}

// Register takes ownership of value; release may be nil
func (l *Library[T]) Register(name string, value T, release func(T) error) (Handle, error) {
	if l.closed {
		return 0, ErrClosed
	}
	if _, ok := l.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	l.entries = append(l.entries, entry[T]{name: name, value: value, release: release})
	h := Handle(len(l.entries))
	l.byName[name] = h
	return h, nil
}

// Get returns the asset behind h
func (l *Library[T]) Get(h Handle) (T, error) {
	var zero T
	if l.closed {
		return zero, ErrClosed
	}
	if !h.IsValid() || int(h) > len(l.entries) {
		return zero, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return l.entries[h-1].value, nil
}

// MustGet is Get for handles validated at startup, panics on failure
func (l *Library[T]) MustGet(h Handle) T {
	v, err := l.Get(h)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the handle registered under name
func (l *Library[T]) Lookup(name string) (Handle, bool) {
	h, ok := l.byName[name]
	return h, ok && !l.closed
}

// Len returns the number of registered assets
func (l *Library[T]) Len() int {
	return len(l.entries)
}

// Close releases every asset once, newest first, and joins release errors
// Subsequent calls are no-ops
func (l *Library[T]) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	var errs []error
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if e.release == nil {
			continue
		}
		if err := e.release(e.value); err != nil {
			errs = append(errs, fmt.Errorf("release %q: %w", e.name, err))
		}
	}
	l.entries = nil
	l.byName = nil
	return errors.Join(errs...)
}
