package statemachine

import (
	"context"
)

// ActionFunc is a side effect executed with the owning instance when a branch is taken.
// Returning an error aborts the transition before the state changes.
type ActionFunc[O any] func(ctx context.Context, owner O, event ID) error

// ActionResolver is implemented by owners that expose actions by name.
// It replaces calling a method looked up by its name at runtime.
type ActionResolver interface {
	ResolveAction(name string) (func(ctx context.Context, event ID) error, bool)
}

type actionKind uint8

const (
	actionNone actionKind = iota
	actionNamed
	actionClosure
)

// ActionRef references the side effect of a branch: either a named action
// resolved on the owner or a closure. The zero value does nothing.
type ActionRef[O any] struct {
	kind actionKind
	name ID
	fn   ActionFunc[O]
}

// NamedAction references an action the owner resolves through ActionResolver.
func NamedAction[O any](name string) ActionRef[O] {
	id := Intern(name)
	if id.IsZero() {
		return ActionRef[O]{}
	}
	return ActionRef[O]{kind: actionNamed, name: id}
}

// ClosureAction wraps fn as an action. A nil fn yields a no-op action.
func ClosureAction[O any](fn ActionFunc[O]) ActionRef[O] {
	if fn == nil {
		return ActionRef[O]{}
	}
	return ActionRef[O]{kind: actionClosure, fn: fn}
}

// IsZero reports whether the reference has no action.
func (a ActionRef[O]) IsZero() bool {
	return a.kind == actionNone
}

// Name returns the action name for named actions and an empty string otherwise.
func (a ActionRef[O]) Name() string {
	return a.name.Name()
}

func (a ActionRef[O]) String() string {
	switch a.kind {
	case actionNamed:
		return a.name.Name()
	case actionClosure:
		return "<closure>"
	}
	return "<none>"
}

func (a ActionRef[O]) execute(ctx context.Context, owner O, event ID) error {
	switch a.kind {
	case actionNamed:
		resolver, ok := any(owner).(ActionResolver)
		if !ok {
			return ErrUnknownAction
		}
		fn, ok := resolver.ResolveAction(a.name.Name())
		if !ok || fn == nil {
			return ErrUnknownAction
		}
		if err := fn(ctx, event); err != nil {
			return &actionError{err: err}
		}
	case actionClosure:
		if err := a.fn(ctx, owner, event); err != nil {
			return &actionError{err: err}
		}
	}
	return nil
}

// actionError marks an error as coming from the action body rather than from resolving it.
type actionError struct {
	err error
}

func (e *actionError) Error() string { return e.err.Error() }
func (e *actionError) Unwrap() error { return e.err }
