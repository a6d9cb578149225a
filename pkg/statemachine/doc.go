// Package statemachine provides a declarative finite-state-machine behavior that
// can be attached to any Go type by composition.
//
// A Machine declares a fixed set of states and events once per owner type and
// stores the transitions registered between them. Each owner then holds its own
// Instance, which tracks the current state and a bounded history of events. The
// library handles:
//  1. Transition registration and validation
//  2. Branch selection through an optional Decider
//  3. Execution of side-effect actions before the state changes
//  4. A capacity-bounded event history per instance
//
// # Architecture
//
// All identifiers (states, events, branch names and decider results) are
// normalized into the canonical ID type, an interned NFC-normalized name that is
// compared by value. Transitions are kept in registration order and indexed by
// (state, event) so that lookups return the first registered match.
//
// A transition has one or more branches. A single branch is taken directly. With
// several branches, the transition's Decider returns an identifier that selects
// the branch whose target state or name equals it.
//
// Actions are either closures (ClosureAction) or names resolved on the owner
// through the ActionResolver interface (NamedAction).
//
// # Usage
//
//	type Door struct {
//	    sm     *statemachine.Instance[*Door]
//	    opened int
//	}
//
//	const (
//	    Closed = statemachine.StringState("closed")
//	    Opened = statemachine.StringState("opened")
//	    Open   = statemachine.StringEvent("open")
//	    Close  = statemachine.StringEvent("close")
//	)
//
//	var doorMachine = statemachine.MustNew[*Door](
//	    statemachine.WithStates(Closed, Opened),
//	    statemachine.WithEvents(Open, Close),
//	    statemachine.WithTransition(Closed, Open, []statemachine.Branch[*Door]{
//	        statemachine.Next[*Door](Opened).Do(func(ctx context.Context, d *Door, _ statemachine.ID) error {
//	            d.opened++
//	            return nil
//	        }),
//	    }),
//	    statemachine.WithTransition(Closed, Close, []statemachine.Branch[*Door]{
//	        statemachine.Next[*Door](statemachine.Stay),
//	    }),
//	)
//
//	// Transitions can also be added after New, directly or with a Builder.
//	_ = doorMachine.Permit(Opened, Close, statemachine.Next[*Door](Closed))
//
//	d := &Door{}
//	d.sm = doorMachine.MustNewInstance(d)
//	state, err := d.sm.SendEvent(ctx, Open)
//
// # Error Handling
//
// SendEvent returns a *TransitionError whose Kind is one of the sentinel errors
// (ErrNoTransition, ErrDeciderReturnedNothing, ErrNoMatchingBranch,
// ErrNotImplemented, ErrUnknownAction, ErrActionFailed); use errors.Is or helpers
// such as IsNoTransitionError. A failed call leaves the current state and the
// history untouched and the instance stays usable.
//
// # Concurrency
//
// A Machine is read-only once registration is finished and can be shared by any
// number of instances. Instances are not synchronized.
package statemachine
