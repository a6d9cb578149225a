package statemachine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidState           = errors.New("invalid state: state cannot be nil or empty")
	ErrInvalidEvent           = errors.New("invalid event: event cannot be nil or empty")
	ErrInvalidDefinition      = errors.New("invalid state machine definition")
	ErrInvalidHistoryCapacity = errors.New("invalid history capacity: must be at least 1")

	// ErrMissingDecider is returned when a transition with several branches is registered without a decider.
	ErrMissingDecider = errors.New("a decider must be present for multiple branches")
	// ErrUninitializedState is returned when the current state is used before it was set.
	ErrUninitializedState = errors.New("no valid current state: instance was not created by its machine")
	// ErrNoTransition is returned when no transition is registered for the current state and event.
	ErrNoTransition = errors.New("no transition available")
	// ErrDeciderReturnedNothing is returned when a decider yields an empty decision.
	ErrDeciderReturnedNothing = errors.New("decider returned nothing")
	// ErrNoMatchingBranch is returned when a decision matches neither a branch target nor a branch name.
	ErrNoMatchingBranch = errors.New("no branch matches decision")
	// ErrNotImplemented is returned when a branch targets the reserved Back state.
	ErrNotImplemented = errors.New("back target is reserved but not implemented")
	// ErrUnknownAction is returned when a named action cannot be resolved on the owner.
	ErrUnknownAction = errors.New("unknown named action")
	// ErrActionFailed wraps an error returned by a branch action.
	ErrActionFailed = errors.New("action failed")
)

// TransitionError describes a failed SendEvent call.
// It matches its Kind sentinel and, when present, the underlying cause with errors.Is.
type TransitionError struct {
	Kind     error
	State    ID
	Event    ID
	Decision string
	Action   string
	Err      error
}

func (e *TransitionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: state '%s', event '%s'", e.Kind, e.State, e.Event)
	if e.Decision != "" {
		fmt.Fprintf(&b, ", decision '%s'", e.Decision)
	}
	if e.Action != "" {
		fmt.Fprintf(&b, ", action '%s'", e.Action)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *TransitionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newTransitionError(kind error, state, event ID) *TransitionError {
	return &TransitionError{Kind: kind, State: state, Event: event}
}

func IsNoTransitionError(err error) bool {
	return errors.Is(err, ErrNoTransition)
}

// IsDecisionError reports whether err was caused by a decider misconfiguration.
func IsDecisionError(err error) bool {
	return errors.Is(err, ErrDeciderReturnedNothing) || errors.Is(err, ErrNoMatchingBranch)
}

func IsActionError(err error) bool {
	return errors.Is(err, ErrActionFailed) || errors.Is(err, ErrUnknownAction)
}
