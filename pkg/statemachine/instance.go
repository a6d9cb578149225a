package statemachine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// Instance is the runtime state of one owner: its current state and event history.
// Owners hold an *Instance and delegate to it.
// An Instance is not safe for concurrent use; callers driving one instance from
// several goroutines must serialize access themselves.
type Instance[O any] struct {
	machine *Machine[O]
	owner   O
	id      uuid.UUID
	current ID
	history *History[ID]
	logger  *slog.Logger
}

// NewInstance creates an instance in the machine's default state.
func (m *Machine[O]) NewInstance(owner O, opts ...InstanceOption) (*Instance[O], error) {
	cfg := defaultInstanceConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Instance[O]{
		machine: m,
		owner:   owner,
		id:      cfg.id,
		current: m.defaultState,
		history: NewHistory[ID](cfg.historyCapacity),
		logger:  cfg.logger.With(logger.Component("statemachine"), logger.InstanceID(cfg.id)),
	}, nil
}

// MustNewInstance works like NewInstance but panics on invalid options.
func (m *Machine[O]) MustNewInstance(owner O, opts ...InstanceOption) *Instance[O] {
	inst, err := m.NewInstance(owner, opts...)
	if err != nil {
		panic(err)
	}
	return inst
}

// ID returns the identifier used in log records.
func (i *Instance[O]) ID() uuid.UUID {
	return i.id
}

// Current returns the current state.
func (i *Instance[O]) Current() (ID, error) {
	if i.current.IsZero() {
		return ID{}, ErrUninitializedState
	}
	return i.current, nil
}

// SetCurrent overrides the current state with the canonical form of state.
func (i *Instance[O]) SetCurrent(state State) error {
	id := IDOf(state)
	if id.IsZero() || classifyTarget(state) != targetState {
		return ErrInvalidState
	}
	i.current = id
	return nil
}

// EventHistory returns the most recent events that produced a transition, oldest first.
func (i *Instance[O]) EventHistory() []ID {
	if i.history == nil {
		return nil
	}
	return i.history.Items()
}

// History exposes the bounded event log, for example to change its capacity.
func (i *Instance[O]) History() *History[ID] {
	if i.history == nil {
		i.history = NewHistory[ID](DefaultHistoryCapacity)
	}
	return i.history
}

// CanSend reports whether a transition is registered for event in the current state.
// It does not consult deciders.
func (i *Instance[O]) CanSend(event Event) bool {
	if i.machine == nil || i.current.IsZero() {
		return false
	}
	_, ok := i.machine.lookup(i.current, IDOf(event))
	return ok
}

// Reset returns the instance to the machine's default state and forgets its history.
func (i *Instance[O]) Reset() error {
	if i.machine == nil {
		return ErrUninitializedState
	}
	i.current = i.machine.defaultState
	i.history = NewHistory[ID](i.History().Cap())
	return nil
}

// SendEvent resolves the transition for event from the current state, runs the chosen
// branch's action, moves to the branch's target and records the event.
// It returns the state after the transition.
//
// If the transition, the decision or the action fails, neither the state nor the history
// changes. Side effects already performed by an action are not rolled back.
func (i *Instance[O]) SendEvent(ctx context.Context, event Event) (ID, error) {
	if i.current.IsZero() || i.machine == nil {
		return ID{}, ErrUninitializedState
	}
	ev := IDOf(event)
	if ev.IsZero() {
		return ID{}, ErrInvalidEvent
	}

	from := i.current
	t, ok := i.machine.lookup(from, ev)
	if !ok {
		return ID{}, i.fail(ctx, newTransitionError(ErrNoTransition, from, ev))
	}

	branch, terr := i.resolveBranch(ctx, t, from, ev)
	if terr != nil {
		return ID{}, i.fail(ctx, terr)
	}

	if err := branch.Action.execute(ctx, i.owner, ev); err != nil {
		terr := newTransitionError(ErrActionFailed, from, ev)
		terr.Action = branch.Action.String()
		var aerr *actionError
		if errors.As(err, &aerr) {
			terr.Err = aerr.err
		} else {
			terr.Kind = err
		}
		return ID{}, i.fail(ctx, terr)
	}

	switch branch.kind {
	case targetStay:
	case targetBack:
		return ID{}, i.fail(ctx, newTransitionError(ErrNotImplemented, from, ev))
	default:
		i.current = branch.target
	}
	i.History().Push(ev)

	i.logger.DebugContext(ctx, "event applied",
		logger.Event(ev.Name()),
		logger.FromState(from.Name()),
		logger.ToState(i.current.Name()),
		logger.Branch(branch.Name),
		logger.HistorySize(i.history.Len()),
	)
	return i.current, nil
}

// resolveBranch picks the branch to take, asking the decider when the transition has one.
func (i *Instance[O]) resolveBranch(ctx context.Context, t *Transition[O], from, ev ID) (Branch[O], *TransitionError) {
	if !t.usesDecider() {
		return t.Branches[0], nil
	}

	raw := t.Decider.Decide(ctx, i.owner, ev)
	decision := Intern(raw)
	if decision.IsZero() {
		return Branch[O]{}, newTransitionError(ErrDeciderReturnedNothing, from, ev)
	}
	for _, b := range t.Branches {
		if b.matches(decision) {
			return b, nil
		}
	}
	terr := newTransitionError(ErrNoMatchingBranch, from, ev)
	terr.Decision = raw
	return Branch[O]{}, terr
}

func (i *Instance[O]) fail(ctx context.Context, err *TransitionError) error {
	i.logger.DebugContext(ctx, "event rejected",
		logger.Event(err.Event.Name()),
		logger.State(err.State.Name()),
		logger.Error(err),
	)
	return err
}
