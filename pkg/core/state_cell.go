package core

import "github.com/go-drift/adapt/pkg/option"

// Setter requests a new value for a StateCell. Requests are queued and
// applied in order at the start of the owning element's next build.
type Setter[T any] interface {
	// Set replaces the value.
	Set(value T)
	// Update computes the new value from the previous one.
	Update(fn func(option.Option[T]) option.Option[T])
	// Clear makes the value absent.
	Clear()
}

// StateCell holds one hook-managed value for a mounted element.
// It is created by UseState and lives until the element unmounts.
//
// StateCell is NOT thread-safe. It must only be accessed from the UI thread.
// To update from a background goroutine, hand the update to the host's
// dispatch queue.
type StateCell[T any] struct {
	owner    Element
	value    option.Option[T]
	pending  []func(option.Option[T]) option.Option[T]
	disposed bool
}

func newStateCell[T any](owner Element, initial option.Option[T]) *StateCell[T] {
	return &StateCell[T]{owner: owner, value: initial}
}

// Value returns the value committed by the most recent build.
func (c *StateCell[T]) Value() option.Option[T] {
	return c.value
}

// Pending returns the number of queued updates.
func (c *StateCell[T]) Pending() int {
	return len(c.pending)
}

// Set queues a replacement value and schedules a rebuild.
func (c *StateCell[T]) Set(value T) {
	c.enqueue(func(option.Option[T]) option.Option[T] {
		return option.Some(value)
	})
}

// Update queues fn and schedules a rebuild. A nil fn is ignored.
func (c *StateCell[T]) Update(fn func(option.Option[T]) option.Option[T]) {
	if fn == nil {
		return
	}
	c.enqueue(fn)
}

// Clear queues a reset to the absent value and schedules a rebuild.
func (c *StateCell[T]) Clear() {
	c.enqueue(func(option.Option[T]) option.Option[T] {
		return option.None[T]()
	})
}

// Safe to call after the owner unmounts (becomes a no-op).
func (c *StateCell[T]) enqueue(fn func(option.Option[T]) option.Option[T]) {
	if c.disposed {
		return
	}
	c.pending = append(c.pending, fn)
	if c.owner != nil {
		c.owner.MarkNeedsBuild()
	}
}

func (c *StateCell[T]) commit() {
	if len(c.pending) == 0 {
		return
	}
	pending := c.pending
	c.pending = nil
	for _, fn := range pending {
		c.value = fn(c.value)
	}
}

func (c *StateCell[T]) disposeHook() {
	c.disposed = true
	c.pending = nil
	c.owner = nil
}
