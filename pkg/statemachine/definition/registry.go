package definition

import (
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// Registry maps decider names used in definitions to Decider implementations.
type Registry[O any] struct {
	deciders map[string]statemachine.Decider[O]
}

// NewRegistry creates an empty registry.
func NewRegistry[O any]() *Registry[O] {
	return &Registry[O]{deciders: make(map[string]statemachine.Decider[O])}
}

// Register adds or replaces the decider called name. Nil deciders are ignored.
func (r *Registry[O]) Register(name string, d statemachine.Decider[O]) *Registry[O] {
	if name != "" && d != nil {
		r.deciders[name] = d
	}
	return r
}

// RegisterFunc is a shorthand for Register with a DeciderFunc.
func (r *Registry[O]) RegisterFunc(name string, fn statemachine.DeciderFunc[O]) *Registry[O] {
	if fn == nil {
		return r
	}
	return r.Register(name, fn)
}

// Decider returns the decider registered under name.
func (r *Registry[O]) Decider(name string) (statemachine.Decider[O], bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.deciders[name]
	return d, ok
}
