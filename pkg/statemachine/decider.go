package statemachine

import (
	"context"
)

// Decider picks one branch of a multi-branch transition.
// The returned identifier is matched against each branch's target state and name;
// an empty result signals that no decision could be made.
type Decider[O any] interface {
	Decide(ctx context.Context, owner O, event ID) string
}

// DeciderFunc adapts an ordinary function to the Decider interface.
type DeciderFunc[O any] func(ctx context.Context, owner O, event ID) string

func (f DeciderFunc[O]) Decide(ctx context.Context, owner O, event ID) string {
	return f(ctx, owner, event)
}

// Deciding is implemented by owners that make branch decisions themselves.
type Deciding interface {
	Decide(ctx context.Context, event ID) string
}

// OwnerDecider returns a Decider that delegates to the owner's own Decide method.
// Owners that do not implement Deciding decide nothing.
func OwnerDecider[O any]() Decider[O] {
	return ownerDecider[O]{}
}

type ownerDecider[O any] struct{}

func (ownerDecider[O]) Decide(ctx context.Context, owner O, event ID) string {
	if d, ok := any(owner).(Deciding); ok {
		return d.Decide(ctx, event)
	}
	return ""
}

func isNilDecider[O any](d Decider[O]) bool {
	if d == nil {
		return true
	}
	if f, ok := d.(DeciderFunc[O]); ok && f == nil {
		return true
	}
	return false
}
