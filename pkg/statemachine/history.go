package statemachine

import (
	"iter"
	"slices"
)

// DefaultHistoryCapacity is the number of events an instance remembers unless configured otherwise.
const DefaultHistoryCapacity = 10

// History is a fixed-capacity FIFO log. Pushing beyond capacity evicts the oldest items.
// The zero value is usable and has DefaultHistoryCapacity.
type History[T any] struct {
	items    []T
	capacity int
}

// NewHistory creates a history holding at most capacity items.
// A capacity below 1 falls back to DefaultHistoryCapacity.
func NewHistory[T any](capacity int) *History[T] {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends item to the tail and evicts from the head until the size fits the capacity.
func (h *History[T]) Push(item T) {
	h.items = append(h.items, item)
	h.trim()
}

// SetCapacity changes the capacity, evicting the oldest items immediately if needed.
func (h *History[T]) SetCapacity(capacity int) error {
	if capacity < 1 {
		return ErrInvalidHistoryCapacity
	}
	h.capacity = capacity
	h.trim()
	return nil
}

// Cap returns the maximum number of retained items.
func (h *History[T]) Cap() int {
	if h.capacity < 1 {
		return DefaultHistoryCapacity
	}
	return h.capacity
}

// Len returns the number of retained items.
func (h *History[T]) Len() int {
	return len(h.items)
}

// Items returns a copy of the retained items, oldest first.
func (h *History[T]) Items() []T {
	return slices.Clone(h.items)
}

// All iterates over the retained items, oldest first.
func (h *History[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range h.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (h *History[T]) trim() {
	if over := len(h.items) - h.Cap(); over > 0 {
		h.items = slices.Delete(h.items, 0, over)
	}
}
