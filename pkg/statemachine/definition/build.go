package definition

import (
	"fmt"

	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// Build creates a machine from def. Decider names are resolved through registry;
// action names become named actions resolved on the owner when a branch is taken.
func Build[O any](def *Definition, registry *Registry[O]) (*statemachine.Machine[O], error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", statemachine.ErrInvalidDefinition)
	}

	opts := []statemachine.Option{
		statemachine.WithStates(stringStates(def.States)...),
		statemachine.WithEvents(stringEvents(def.Events)...),
	}
	if def.DefaultState != "" {
		opts = append(opts, statemachine.WithDefaultState(statemachine.StringState(def.DefaultState)))
	}

	m, err := statemachine.New[O](opts...)
	if err != nil {
		return nil, err
	}

	for i, t := range def.Transitions {
		var decider statemachine.Decider[O]
		if t.Decider != "" {
			d, ok := registry.Decider(t.Decider)
			if !ok {
				return nil, fmt.Errorf("transition[%d] %s on %s: %w '%s'", i, t.State, t.Event, ErrUnknownDecider, t.Decider)
			}
			decider = d
		}

		branches := make([]statemachine.Branch[O], 0, len(t.Next))
		for _, b := range t.Next {
			branches = append(branches, branch[O](b))
		}

		if err := m.AddTransition(statemachine.StringState(t.State), statemachine.StringEvent(t.Event), branches, decider); err != nil {
			return nil, fmt.Errorf("transition[%d] %s on %s: %w", i, t.State, t.Event, err)
		}
	}

	return m, nil
}

// branch maps the reserved names "stay" and "back" to the special targets.
func branch[O any](b Branch) statemachine.Branch[O] {
	var to statemachine.State
	switch b.State {
	case statemachine.Stay.Name():
		to = statemachine.Stay
	case statemachine.Back.Name():
		to = statemachine.Back
	case "":
	default:
		to = statemachine.StringState(b.State)
	}

	out := statemachine.Branch[O]{To: to, Name: b.Name}
	if b.Action != "" {
		out.Action = statemachine.NamedAction[O](b.Action)
	}
	return out
}

func stringStates(names []string) []statemachine.State {
	out := make([]statemachine.State, 0, len(names))
	for _, n := range names {
		out = append(out, statemachine.StringState(n))
	}
	return out
}

func stringEvents(names []string) []statemachine.Event {
	out := make([]statemachine.Event, 0, len(names))
	for _, n := range names {
		out = append(out, statemachine.StringEvent(n))
	}
	return out
}
