package statemachine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

const (
	stateA = statemachine.StringState("a_state")
	stateB = statemachine.StringState("b_state")
	stateC = statemachine.StringState("c_state")
	stateD = statemachine.StringState("d_state")

	eventW = statemachine.StringEvent("w_event")
	eventX = statemachine.StringEvent("x_event")
	eventY = statemachine.StringEvent("y_event")
	eventZ = statemachine.StringEvent("z_event")
)

// fixture owns a state machine instance and the values its actions and deciders work on.
type fixture struct {
	sm *statemachine.Instance[*fixture]

	testVal        string
	prevTestVal    string
	procVal        int
	forceDecideNil bool
	nameForDecider string
}

func (f *fixture) incrementValue(by int) {
	f.procVal += by
}

// bush records a new term and sends w_event, which lets cStateDecider compare terms.
func (f *fixture) bush(ctx context.Context, term string) (statemachine.ID, error) {
	f.prevTestVal = f.testVal
	f.testVal = term
	return f.sm.SendEvent(ctx, eventW)
}

func (f *fixture) cStateDecider(_ statemachine.ID) string {
	if f.forceDecideNil {
		return ""
	}
	refined := f.testVal != "" && f.prevTestVal != "" && strings.HasPrefix(f.testVal, f.prevTestVal)
	if refined {
		return stateB.Name()
	}
	return stateA.Name()
}

func (f *fixture) namedActionDecider(_ statemachine.ID) string {
	return f.nameForDecider
}

func increment(by int) statemachine.ActionFunc[*fixture] {
	return func(_ context.Context, f *fixture, _ statemachine.ID) error {
		f.incrementValue(by)
		return nil
	}
}

func newFixtureMachine(t testing.TB) *statemachine.Machine[*fixture] {
	t.Helper()

	m, err := statemachine.New[*fixture](
		statemachine.WithStates(stateA, stateB, stateC, stateD),
		statemachine.WithEvents(eventW, eventX, eventY, eventZ),
	)
	require.NoError(t, err)

	next := statemachine.Next[*fixture]
	require.NoError(t, m.Permit(stateA, eventW, next(stateB).Do(increment(5))))
	require.NoError(t, m.Permit(stateA, eventX, next(stateC)))
	require.NoError(t, m.Permit(stateA, eventY, next(stateA)))
	require.NoError(t, m.Permit(stateA, eventZ, next(stateB)))

	require.NoError(t, m.Permit(stateB, eventW, next(stateB)))
	require.NoError(t, m.Permit(stateB, eventY, next(stateC)))
	require.NoError(t, m.Permit(stateB, eventZ, next(stateA)))

	require.NoError(t, m.Permit(stateC, eventX, next(stateB)))
	require.NoError(t, m.Permit(stateC, eventY, next(stateA).Do(increment(-3))))

	require.NoError(t, m.PermitDynamic(stateC, eventW,
		statemachine.DeciderFunc[*fixture](func(_ context.Context, f *fixture, e statemachine.ID) string {
			return f.cStateDecider(e)
		}),
		next(stateA).Do(increment(7)),
		next(stateB).Do(increment(-10)),
	))

	require.NoError(t, m.PermitDynamic(stateC, eventZ,
		statemachine.DeciderFunc[*fixture](func(_ context.Context, f *fixture, e statemachine.ID) string {
			return f.namedActionDecider(e)
		}),
		next(stateA).Named("foo").Do(increment(7)),
		next(stateD).Named("bar").Do(increment(-10)),
	))

	require.NoError(t, m.Permit(stateD, eventX, next(statemachine.Stay)))
	return m
}

func newFixture(t testing.TB, m *statemachine.Machine[*fixture], opts ...statemachine.InstanceOption) *fixture {
	t.Helper()

	f := &fixture{nameForDecider: "foo"}
	inst, err := m.NewInstance(f, opts...)
	require.NoError(t, err)
	f.sm = inst
	return f
}

func current(t testing.TB, f *fixture) statemachine.ID {
	t.Helper()

	s, err := f.sm.Current()
	require.NoError(t, err)
	return s
}

func send(t testing.TB, f *fixture, e statemachine.Event) statemachine.ID {
	t.Helper()

	s, err := f.sm.SendEvent(context.Background(), e)
	require.NoError(t, err)
	return s
}

func id(n statemachine.State) statemachine.ID {
	return statemachine.IDOf(n)
}
