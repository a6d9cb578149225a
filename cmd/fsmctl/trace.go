package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine/definition"
)

// trace is the owner used for dry runs: it prints named actions instead of
// executing them and answers deciders with fixed decisions.
type trace struct {
	out       io.Writer
	decisions map[string]string
}

func (t *trace) ResolveAction(name string) (func(context.Context, statemachine.ID) error, bool) {
	return func(_ context.Context, event statemachine.ID) error {
		_, err := fmt.Fprintf(t.out, "  action %s (event %s)\n", name, event)
		return err
	}, true
}

// registry answers every decider referenced by def with the decision given on the command line.
func (t *trace) registry(def *definition.Definition) *definition.Registry[*trace] {
	r := definition.NewRegistry[*trace]()
	for _, name := range def.DeciderNames() {
		r.RegisterFunc(name, func(_ context.Context, owner *trace, _ statemachine.ID) string {
			return owner.decisions[name]
		})
	}
	return r
}

// decisionFlag collects repeated -decide name=value flags.
type decisionFlag map[string]string

func (d decisionFlag) String() string {
	pairs := make([]string, 0, len(d))
	for k, v := range d {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (d decisionFlag) Set(value string) error {
	name, decision, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected decider=decision, got %q", value)
	}
	d[name] = decision
	return nil
}
