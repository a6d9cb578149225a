package statemachine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

func TestActionRef(t *testing.T) {
	t.Parallel()

	var zero statemachine.ActionRef[any]
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<none>", zero.String())

	named := statemachine.NamedAction[any]("notify")
	assert.False(t, named.IsZero())
	assert.Equal(t, "notify", named.Name())

	assert.True(t, statemachine.NamedAction[any]("").IsZero())
	assert.True(t, statemachine.ClosureAction[any](nil).IsZero())

	closure := statemachine.ClosureAction[any](func(context.Context, any, statemachine.ID) error { return nil })
	assert.False(t, closure.IsZero())
	assert.Empty(t, closure.Name())
	assert.Equal(t, "<closure>", closure.String())
}

func TestBranchBuilders(t *testing.T) {
	t.Parallel()

	b := statemachine.Next[any](stateB).Named("bar").Call("notify")
	assert.Equal(t, stateB, b.To)
	assert.Equal(t, "bar", b.Name)
	assert.Equal(t, "notify", b.Action.Name())
	assert.True(t, b.Target().IsZero(), "targets are resolved on registration")
}
