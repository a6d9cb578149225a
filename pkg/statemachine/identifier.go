package statemachine

import (
	"unique"

	"golang.org/x/text/unicode/norm"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation for basic use cases.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

// ID is the canonical interned form of a state, event, branch name or decision.
// Two IDs are equal if and only if their NFC-normalized names are equal, so
// IDs can be compared with == and used as map keys. The zero ID means "unset".
// ID satisfies both State and Event.
type ID struct {
	h unique.Handle[string]
}

// Intern returns the canonical ID for name. An empty name yields the zero ID.
func Intern(name string) ID {
	if name == "" {
		return ID{}
	}
	return ID{h: unique.Make(norm.NFC.String(name))}
}

// IDOf converts any named value into its canonical ID.
// Nil values yield the zero ID.
func IDOf(n interface{ Name() string }) ID {
	switch v := n.(type) {
	case nil:
		return ID{}
	case ID:
		return v
	case *ID:
		if v == nil {
			return ID{}
		}
		return *v
	}
	return Intern(n.Name())
}

func (id ID) Name() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

func (id ID) String() string {
	return id.Name()
}

// IsZero reports whether id is unset.
func (id ID) IsZero() bool {
	return id == ID{}
}

// specialTarget is a reserved branch target that is not a declared state.
type specialTarget string

func (s specialTarget) Name() string {
	return string(s)
}

const (
	// Stay keeps the instance in its current state when the branch is taken.
	Stay specialTarget = "stay"
	// Back is reserved for returning to the previous state. Selecting it fails with ErrNotImplemented.
	Back specialTarget = "back"
)

type targetKind uint8

const (
	targetState targetKind = iota
	targetStay
	targetBack
)

func classifyTarget(s State) targetKind {
	switch s {
	case Stay:
		return targetStay
	case Back:
		return targetBack
	}
	return targetState
}
