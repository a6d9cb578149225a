package statemachine

import (
	"fmt"
)

// Builder provides a fluent API for registering transitions on a machine.
type Builder[O any] struct {
	machine *Machine[O]
	state   State
	event   Event
	next    []Branch[O]
	decider Decider[O]
	err     error
}

// NewBuilder creates a builder around a machine declared with opts.
func NewBuilder[O any](opts ...Option) (*Builder[O], error) {
	m, err := New[O](opts...)
	if err != nil {
		return nil, err
	}
	return &Builder[O]{machine: m}, nil
}

// From sets the starting state for a transition.
func (b *Builder[O]) From(state State) *Builder[O] {
	b.reset()
	b.state = state
	return b
}

// When sets the event that triggers a transition.
func (b *Builder[O]) When(event Event) *Builder[O] {
	b.event = event
	return b
}

// To adds a plain branch for each target state.
func (b *Builder[O]) To(states ...State) *Builder[O] {
	for _, s := range states {
		b.next = append(b.next, Next[O](s))
	}
	return b
}

// Branch adds fully configured branches.
func (b *Builder[O]) Branch(branches ...Branch[O]) *Builder[O] {
	b.next = append(b.next, branches...)
	return b
}

// Named names the most recently added branch.
func (b *Builder[O]) Named(name string) *Builder[O] {
	return b.last("name", func(br Branch[O]) Branch[O] { return br.Named(name) })
}

// WithAction attaches fn to the most recently added branch.
func (b *Builder[O]) WithAction(fn ActionFunc[O]) *Builder[O] {
	return b.last("action", func(br Branch[O]) Branch[O] { return br.Do(fn) })
}

// Call attaches the owner's action called name to the most recently added branch.
func (b *Builder[O]) Call(name string) *Builder[O] {
	return b.last("action", func(br Branch[O]) Branch[O] { return br.Call(name) })
}

// Decide sets the decider for the current transition.
func (b *Builder[O]) Decide(decider Decider[O]) *Builder[O] {
	b.decider = decider
	return b
}

// Add finalizes the current transition and registers it on the machine.
func (b *Builder[O]) Add() (*Builder[O], error) {
	err := b.err
	if err == nil {
		err = b.machine.AddTransition(b.state, b.event, b.next, b.decider)
	}
	if err != nil {
		return b, fmt.Errorf("failed to add transition %s on %s: %w", nameOf(b.state), nameOf(b.event), err)
	}
	b.reset()
	return b, nil
}

// Build returns the constructed machine.
func (b *Builder[O]) Build() *Machine[O] {
	return b.machine
}

func (b *Builder[O]) last(what string, apply func(Branch[O]) Branch[O]) *Builder[O] {
	if len(b.next) == 0 {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %s set before any branch", ErrInvalidDefinition, what)
		}
		return b
	}
	i := len(b.next) - 1
	b.next[i] = apply(b.next[i])
	return b
}

// reset clears the current transition configuration.
func (b *Builder[O]) reset() {
	b.state = nil
	b.event = nil
	b.next = nil
	b.decider = nil
	b.err = nil
}
