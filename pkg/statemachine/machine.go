package statemachine

import (
	"fmt"
	"slices"
)

// Machine is the transition table shared by every instance of one owner type.
// Declare states, events and transitions during setup, then create instances with NewInstance.
// Registration is not synchronized; finish it before instances are used concurrently.
// After setup, a Machine may be read by any number of goroutines.
type Machine[O any] struct {
	states       []ID
	events       []ID
	defaultState ID
	transitions  []*Transition[O]
	// index maps a (state, event) pair to its first registered transition.
	index map[transitionKey]int
}

// New creates a machine from the declaration options.
// Transitions declared with WithTransition or WithTransitions are registered in option order.
// The default state is the one given by WithDefaultState, else the first declared state.
func New[O any](opts ...Option) (*Machine[O], error) {
	decl := &declaration{}
	for _, opt := range opts {
		if err := opt(decl); err != nil {
			return nil, err
		}
	}
	if err := decl.validate(); err != nil {
		return nil, err
	}

	defaultState := decl.defaultState
	if defaultState.IsZero() {
		defaultState = decl.states[0]
	}

	m := &Machine[O]{
		states:       decl.states,
		events:       decl.events,
		defaultState: defaultState,
		index:        make(map[transitionKey]int),
	}
	for _, register := range decl.registrations {
		if err := register(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew works like New but panics on an invalid declaration.
func MustNew[O any](opts ...Option) *Machine[O] {
	m, err := New[O](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// AddTransition registers the branches taken when event arrives in state.
// More than one branch requires a decider. With exactly one branch the decider is not used.
// Registrations are not deduplicated: lookups return the first match.
func (m *Machine[O]) AddTransition(state State, event Event, next []Branch[O], decider Decider[O]) error {
	from, ev := IDOf(state), IDOf(event)
	if from.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, ErrInvalidState)
	}
	if ev.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, ErrInvalidEvent)
	}

	switch {
	case len(next) == 0:
		return fmt.Errorf("%w: transition '%s' on '%s' has no branches", ErrInvalidDefinition, from, ev)
	case len(next) == 1:
		decider = nil
	case isNilDecider(decider):
		return fmt.Errorf("%w: transition '%s' on '%s' has %d branches", ErrMissingDecider, from, ev, len(next))
	}

	branches := make([]Branch[O], 0, len(next))
	for i, b := range next {
		nb, err := b.normalize()
		if err != nil {
			return fmt.Errorf("%w: transition '%s' on '%s', branch[%d]: %w", ErrInvalidDefinition, from, ev, i, err)
		}
		branches = append(branches, nb)
	}

	t := &Transition[O]{
		State:    from,
		Event:    ev,
		Branches: branches,
		Decider:  decider,
	}

	key := transitionKey{state: from, event: ev}
	if _, exists := m.index[key]; !exists {
		m.index[key] = len(m.transitions)
	}
	m.transitions = append(m.transitions, t)
	return nil
}

// Permit registers a single-branch transition.
func (m *Machine[O]) Permit(state State, event Event, next Branch[O]) error {
	return m.AddTransition(state, event, []Branch[O]{next}, nil)
}

// PermitDynamic registers a transition whose branch is chosen by decider.
func (m *Machine[O]) PermitDynamic(state State, event Event, decider Decider[O], next ...Branch[O]) error {
	return m.AddTransition(state, event, next, decider)
}

// Lookup returns the first transition registered for (state, event).
func (m *Machine[O]) Lookup(state State, event Event) (Transition[O], bool) {
	t, ok := m.lookup(IDOf(state), IDOf(event))
	if !ok {
		return Transition[O]{}, false
	}
	cp := *t
	cp.Branches = slices.Clone(t.Branches)
	return cp, true
}

func (m *Machine[O]) lookup(state, event ID) (*Transition[O], bool) {
	i, ok := m.index[transitionKey{state: state, event: event}]
	if !ok {
		return nil, false
	}
	return m.transitions[i], true
}

// NextState returns the target of the transition for (state, event) when it can be known
// without running a decider, that is when the transition has a single branch.
func (m *Machine[O]) NextState(state State, event Event) (State, bool) {
	t, ok := m.lookup(IDOf(state), IDOf(event))
	if !ok || len(t.Branches) != 1 {
		return nil, false
	}
	return t.Branches[0].To, true
}

// States returns the declared states in declaration order.
func (m *Machine[O]) States() []ID {
	return slices.Clone(m.states)
}

// Events returns the declared events in declaration order.
func (m *Machine[O]) Events() []ID {
	return slices.Clone(m.events)
}

func (m *Machine[O]) DefaultState() ID {
	return m.defaultState
}

// Transitions returns every registered transition in registration order.
func (m *Machine[O]) Transitions() []Transition[O] {
	out := make([]Transition[O], 0, len(m.transitions))
	for _, t := range m.transitions {
		cp := *t
		cp.Branches = slices.Clone(t.Branches)
		out = append(out, cp)
	}
	return out
}
