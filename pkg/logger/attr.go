package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// InstanceID records the state machine instance identifier under the key "instance_id".
// If id is nil, it returns an empty Attr.
func InstanceID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("instance_id", id)
}

// State records a state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// FromState records the state an event left under the key "from".
func FromState(name string) slog.Attr {
	return slog.String("from", name)
}

// ToState records the state an event entered under the key "to".
func ToState(name string) slog.Attr {
	return slog.String("to", name)
}

// Branch records the name of the branch taken under the key "branch".
// Unnamed branches produce an empty Attr.
func Branch(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("branch", name)
}

// HistorySize records the number of retained events under the key "history_size".
func HistorySize(n int) slog.Attr {
	return slog.Int("history_size", n)
}

// Definition records the source of a machine definition under the key "definition".
func Definition(path string) slog.Attr {
	return slog.String("definition", path)
}
