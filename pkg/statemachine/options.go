package statemachine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Option configures the declaration of a machine.
type Option func(*declaration) error

type declaration struct {
	states       []ID
	events       []ID
	defaultState ID
	// registrations run against the machine once the declaration is valid.
	registrations []func(machine any) error
}

// WithStates declares the machine's states in order.
func WithStates(states ...State) Option {
	return func(d *declaration) error {
		for i, s := range states {
			id := IDOf(s)
			if id.IsZero() || classifyTarget(s) != targetState {
				return fmt.Errorf("%w: state[%d]: %w", ErrInvalidDefinition, i, ErrInvalidState)
			}
			if !slices.Contains(d.states, id) {
				d.states = append(d.states, id)
			}
		}
		return nil
	}
}

// WithEvents declares the machine's events in order.
func WithEvents(events ...Event) Option {
	return func(d *declaration) error {
		for i, e := range events {
			id := IDOf(e)
			if id.IsZero() {
				return fmt.Errorf("%w: event[%d]: %w", ErrInvalidDefinition, i, ErrInvalidEvent)
			}
			if !slices.Contains(d.events, id) {
				d.events = append(d.events, id)
			}
		}
		return nil
	}
}

// WithDefaultState sets the state new instances start in.
func WithDefaultState(state State) Option {
	return func(d *declaration) error {
		id := IDOf(state)
		if id.IsZero() {
			return fmt.Errorf("%w: default state: %w", ErrInvalidDefinition, ErrInvalidState)
		}
		d.defaultState = id
		return nil
	}
}

// TransitionOption configures a transition declared with WithTransition.
type TransitionOption[O any] func(*transitionConfig[O])

type transitionConfig[O any] struct {
	decider Decider[O]
}

// WithDecider sets the decider that picks one of several branches.
func WithDecider[O any](decider Decider[O]) TransitionOption[O] {
	return func(cfg *transitionConfig[O]) {
		cfg.decider = decider
	}
}

// TransitionDef describes one transition for WithTransitions.
type TransitionDef[O any] struct {
	State   State
	Event   Event
	Next    []Branch[O]
	Decider Decider[O]
}

// WithTransition registers the branches taken when event arrives in state.
// Registration errors, including ErrMissingDecider, are returned by New.
func WithTransition[O any](state State, event Event, next []Branch[O], opts ...TransitionOption[O]) Option {
	return func(d *declaration) error {
		cfg := &transitionConfig[O]{}
		for _, opt := range opts {
			opt(cfg)
		}

		d.registrations = append(d.registrations, func(machine any) error {
			m, err := machineFor[O](machine)
			if err == nil {
				err = m.AddTransition(state, event, next, cfg.decider)
			}
			if err != nil {
				return fmt.Errorf("failed to add transition %s on %s: %w", nameOf(state), nameOf(event), err)
			}
			return nil
		})
		return nil
	}
}

// WithTransitions registers several transitions in order.
func WithTransitions[O any](transitions []TransitionDef[O]) Option {
	return func(d *declaration) error {
		defs := slices.Clone(transitions)

		d.registrations = append(d.registrations, func(machine any) error {
			m, err := machineFor[O](machine)
			if err != nil {
				return err
			}
			for i, t := range defs {
				if err := m.AddTransition(t.State, t.Event, t.Next, t.Decider); err != nil {
					return fmt.Errorf("failed to add transition[%d] %s on %s: %w",
						i, nameOf(t.State), nameOf(t.Event), err)
				}
			}
			return nil
		})
		return nil
	}
}

func machineFor[O any](machine any) (*Machine[O], error) {
	m, ok := machine.(*Machine[O])
	if !ok {
		return nil, fmt.Errorf("%w: transition declared for a different owner type", ErrInvalidDefinition)
	}
	return m, nil
}

func nameOf(n interface{ Name() string }) string {
	if id := IDOf(n); !id.IsZero() {
		return id.Name()
	}
	return "<nil>"
}

func (d *declaration) validate() error {
	if len(d.states) == 0 {
		return fmt.Errorf("%w: at least one state must be declared", ErrInvalidDefinition)
	}
	if !d.defaultState.IsZero() && !slices.Contains(d.states, d.defaultState) {
		return fmt.Errorf("%w: default state '%s' is not declared", ErrInvalidDefinition, d.defaultState)
	}
	return nil
}

// InstanceOption configures a single instance.
type InstanceOption func(*instanceConfig) error

type instanceConfig struct {
	historyCapacity int
	logger          *slog.Logger
	id              uuid.UUID
}

func defaultInstanceConfig() *instanceConfig {
	return &instanceConfig{
		historyCapacity: DefaultHistoryCapacity,
		logger:          slog.New(slog.DiscardHandler),
		id:              uuid.New(),
	}
}

// WithHistoryCapacity sets how many events the instance remembers.
func WithHistoryCapacity(capacity int) InstanceOption {
	return func(c *instanceConfig) error {
		if capacity < 1 {
			return ErrInvalidHistoryCapacity
		}
		c.historyCapacity = capacity
		return nil
	}
}

// WithLogger enables debug logging of applied and rejected events. Nil loggers are ignored.
func WithLogger(l *slog.Logger) InstanceOption {
	return func(c *instanceConfig) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithInstanceID overrides the random identifier used to correlate log records.
func WithInstanceID(id uuid.UUID) InstanceOption {
	return func(c *instanceConfig) error {
		if id != uuid.Nil {
			c.id = id
		}
		return nil
	}
}
