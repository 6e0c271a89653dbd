package syncstore

import (
	"context"
	"sync"
)

// Snapshot is the read surface handed to the view: never raw API payloads,
// always the normalized items plus the store's status and last error.
type Snapshot[T any] struct {
	Status Status
	Items  []T
	Err    string
}

// Collection is a tri-state cache of one remote collection.
//
// Rules it enforces:
//   - Loading keeps the previous items (stale-while-loading, never cleared).
//   - A failed fetch keeps the last successfully loaded items.
//   - Only the most recently issued fetch may define the items: a
//     superseded fetch's result is discarded regardless of arrival order.
//   - Mutations patch items in place on success and never refetch.
type Collection[T any] struct {
	mu     sync.Mutex
	status Status
	items  []T
	err    string
	seq    uint64
	idFn   func(T) string
}

// NewCollection builds an empty Idle collection. idFn extracts the identity
// used to match items on update and remove.
func NewCollection[T any](idFn func(T) string) *Collection[T] {
	return &Collection[T]{idFn: idFn}
}

// Fetch runs fn and, if this fetch is still the most recently issued one
// when fn returns, replaces the items wholesale (success) or records the
// failure. The returned bool reports whether the result was applied;
// superseded results return (false, nil) and change nothing.
func (c *Collection[T]) Fetch(ctx context.Context, fn func(ctx context.Context) ([]T, error)) (bool, error) {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.status = Loading
	c.err = ""
	c.mu.Unlock()

	items, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if mySeq != c.seq {
		// A later fetch was issued while this one was in flight.
		return false, nil
	}

	if err != nil {
		c.status = Failed
		c.err = err.Error()
		return true, err
	}

	c.items = items
	c.status = Ready
	c.err = ""
	return true, nil
}

// Create runs fn and appends the resulting item. On failure the items are
// untouched and the error is recorded.
func (c *Collection[T]) Create(ctx context.Context, fn func(ctx context.Context) (T, error)) error {
	item, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = Failed
		c.err = err.Error()
		return err
	}

	c.items = append(c.items, item)
	c.status = Ready
	c.err = ""
	return nil
}

// Update runs fn and replaces the item whose identity matches id. A success
// for an id no longer present is a no-op on the items.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(ctx context.Context) (T, error)) error {
	item, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = Failed
		c.err = err.Error()
		return err
	}

	for i := range c.items {
		if c.idFn(c.items[i]) == id {
			c.items[i] = item
			break
		}
	}
	c.status = Ready
	c.err = ""
	return nil
}

// Remove runs fn and deletes the item whose identity matches id, preserving
// order of the remainder.
func (c *Collection[T]) Remove(ctx context.Context, id string, fn func(ctx context.Context) error) error {
	err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = Failed
		c.err = err.Error()
		return err
	}

	for i := range c.items {
		if c.idFn(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.status = Ready
	c.err = ""
	return nil
}

// Snapshot returns a copy of the current state. The items slice is copied
// so the view can hold it across later transitions.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return Snapshot[T]{Status: c.status, Items: items, Err: c.err}
}

// ClearError resets a Failed store back to Ready (if it holds data) or Idle
// without touching the items. Used by the view to dismiss an error banner.
func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = ""
	if c.status == Failed {
		if len(c.items) > 0 {
			c.status = Ready
		} else {
			c.status = Idle
		}
	}
}
