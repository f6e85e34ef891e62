package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	noTransition := &NoTransitionError{Event: "GO", State: "draft"}
	require.ErrorIs(t, noTransition, ErrNoTransition)
	assert.Equal(t, "no transition 'GO' from state 'draft'", noTransition.Error())

	guard := &GuardError{Event: "GO", State: "draft"}
	require.ErrorIs(t, guard, ErrGuardRejected)
	assert.Equal(t, "transition 'GO' from state 'draft' not allowed", guard.Error())

	guardWithMessage := &GuardError{Event: "GO", State: "draft", Message: "not yet"}
	assert.Equal(t, "not yet", guardWithMessage.Error())

	target := &TargetError{Event: "GO", State: "draft", Target: "ghost"}
	require.ErrorIs(t, target, ErrInvalidTarget)
	assert.Equal(t, "transition 'GO' from state 'draft' targets unknown state 'ghost'", target.Error())

	cause := errors.New("db down")
	hook := &HookError{State: "draft", Phase: "exit", Err: cause}
	require.ErrorIs(t, hook, cause)
	assert.Equal(t, "exit of state 'draft': db down", hook.Error())
}
