package statemachine

// Branch is one candidate outcome of a transition.
type Branch[O any] struct {
	// To is the target state, or one of the reserved targets Stay and Back.
	To State
	// Name optionally identifies the branch for deciders.
	Name string
	// Action runs before the state changes. The zero value does nothing.
	Action ActionRef[O]

	target ID
	kind   targetKind
	name   ID
}

// Next returns a branch moving to state.
func Next[O any](to State) Branch[O] {
	return Branch[O]{To: to}
}

// Named returns a copy of the branch carrying name.
func (b Branch[O]) Named(name string) Branch[O] {
	b.Name = name
	return b
}

// Do returns a copy of the branch that runs fn when taken.
func (b Branch[O]) Do(fn ActionFunc[O]) Branch[O] {
	b.Action = ClosureAction(fn)
	return b
}

// Call returns a copy of the branch that runs the owner's action called name when taken.
func (b Branch[O]) Call(name string) Branch[O] {
	b.Action = NamedAction[O](name)
	return b
}

// Target returns the canonical target. For Stay and Back it is the reserved name.
func (b Branch[O]) Target() ID {
	return b.target
}

// matches reports whether a decision selects this branch by target state or by name.
func (b Branch[O]) matches(decision ID) bool {
	if b.target == decision {
		return true
	}
	return !b.name.IsZero() && b.name == decision
}

func (b Branch[O]) normalize() (Branch[O], error) {
	target := IDOf(b.To)
	if target.IsZero() {
		return b, ErrInvalidState
	}
	b.target = target
	b.kind = classifyTarget(b.To)
	b.name = Intern(b.Name)
	return b, nil
}

// Transition is the rule set registered for one (state, event) pair.
type Transition[O any] struct {
	State    ID
	Event    ID
	Branches []Branch[O]
	// Decider is nil for single-branch transitions registered without one.
	Decider Decider[O]
}

// usesDecider reports whether branch selection goes through the decider.
func (t *Transition[O]) usesDecider() bool {
	return !isNilDecider(t.Decider)
}

type transitionKey struct {
	state ID
	event ID
}
