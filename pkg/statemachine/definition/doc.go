// Package definition loads state machines declared in YAML.
//
//	states: [closed, opened]
//	events: [open, close]
//	default_state: closed
//	transitions:
//	  - {state: closed, event: open, next: {state: opened, action: count_open}}
//	  - {state: opened, event: close, next: closed}
//
// A transition's next is a state name, a branch mapping (state, name, action) or
// a sequence of them; "stay" and "back" denote the reserved targets. Actions are
// resolved by name on the owner (see statemachine.ActionResolver). Deciders are
// looked up by name in a Registry when the machine is built.
package definition
