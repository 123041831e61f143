package state

import (
	"context"
	"sync"

	"lmsadmin/internal/model"
)

// List is an in-memory ordered collection mirrored from the remote API. It
// never holds a record the remote has not confirmed: creations, updates and
// deletions are applied only after the corresponding gateway call succeeds,
// and a failed load keeps the previous contents intact.
type List[T any] struct {
	mu      sync.Mutex
	id      func(T) string
	items   []T
	loaded  bool
	loadErr error
	epoch   uint64
}

// NewList builds a List keyed by the given id extractor.
func NewList[T any](id func(T) string) *List[T] {
	return &List[T]{id: id}
}

// Courses builds the course collection.
func Courses() *List[model.Course] {
	return NewList(func(c model.Course) string { return c.ID })
}

// Lectures builds the lecture collection for one course.
func Lectures() *List[model.Lecture] {
	return NewList(func(l model.Lecture) string { return l.ID })
}

// Load refreshes the full collection through fetch. On success the contents
// are replaced atomically; on failure the previous contents are kept and the
// error recorded for the page-level error state. A result that arrives after
// Invalidate (or after a newer Load began) is discarded, not applied.
func (l *List[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	l.mu.Lock()
	l.epoch++
	epoch := l.epoch
	l.mu.Unlock()

	items, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch {
		// state is no longer owned by this load
		return nil
	}
	if err != nil {
		l.loadErr = err
		return err
	}
	l.items = append([]T(nil), items...)
	l.loaded = true
	l.loadErr = nil
	return nil
}

// Invalidate marks any in-flight load as stale, so its late result is
// dropped. Called when the owning view goes away.
func (l *List[T]) Invalidate() {
	l.mu.Lock()
	l.epoch++
	l.mu.Unlock()
}

// ApplyCreate appends a record the remote has confirmed, carrying the
// server-assigned identifier.
func (l *List[T]) ApplyCreate(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// ApplyUpdate merges a confirmed update into the matching record. It reports
// whether a record with that id was present.
func (l *List[T]) ApplyUpdate(id string, merge func(T) T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.items {
		if l.id(item) == id {
			l.items[i] = merge(item)
			return true
		}
	}
	return false
}

// ApplyDelete removes the matching record after the remote confirmed the
// deletion. It reports whether a record with that id was present.
func (l *List[T]) ApplyDelete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.items {
		if l.id(item) == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the collection in order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Get returns the record with the given id.
func (l *List[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		if l.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Loaded reports whether at least one load has succeeded.
func (l *List[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Err returns the error recorded by the most recent failed load, cleared by
// the next successful one.
func (l *List[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadErr
}
