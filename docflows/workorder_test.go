package docflows_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-core/docflows"
	wftest "github.com/satriyop/enter365-core/workflow/testing"
)

func TestWorkOrderConfigIsSound(t *testing.T) {
	t.Parallel()

	config := docflows.NewWorkOrderConfig()

	require.NoError(t, config.Validate())
	assert.Empty(t, config.UnreachableStates())
	assert.Equal(t, []string{docflows.WOCancelled, docflows.WOCompleted}, config.FinalStates())
}

func TestWorkOrderScheduleRequiresAssignee(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewWorkOrderConfig())

	result := tm.MustFail(docflows.WOSchedule, nil)
	assert.EqualError(t, result.Err, "work order needs an assignee before scheduling")

	tm.UpdateContext(map[string]any{docflows.KeyAssigneeID: ""})
	tm.MustFail(docflows.WOSchedule, nil)

	tm.UpdateContext(map[string]any{docflows.KeyAssigneeID: "tech-14"})
	tm.MustTransition(docflows.WOSchedule, nil)
	assert.Equal(t, docflows.WOScheduled, tm.Current())
}

func TestWorkOrderHoldAndResume(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewWorkOrderConfig())
	tm.UpdateContext(map[string]any{docflows.KeyAssigneeID: "tech-14"})

	tm.MustTransition(docflows.WOSchedule, nil)
	tm.MustTransition(docflows.WOStart, nil)
	tm.MustTransition(docflows.WOHold, map[string]any{docflows.PayloadReason: "awaiting parts"})

	tm.Assert(wftest.ContextContains(docflows.KeyHoldReason, "awaiting parts"))

	tm.MustTransition(docflows.WOResume, nil)

	_, ok := tm.State().Context[docflows.KeyHoldReason]
	assert.False(t, ok, "resume clears the hold reason")
	assert.Equal(t, docflows.WOInProgress, tm.Current())
}

func TestWorkOrderCompletionTimestamp(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewWorkOrderConfig())
	tm.UpdateContext(map[string]any{docflows.KeyAssigneeID: 42})

	before := time.Now()

	tm.MustTransition(docflows.WOSchedule, nil)
	tm.MustTransition(docflows.WOStart, nil)

	result := tm.MustTransition(docflows.WOComplete, nil)
	require.True(t, result.State.Done)

	completedAt, ok := tm.State().Context[docflows.KeyCompletedAt].(time.Time)
	require.True(t, ok)
	assert.False(t, completedAt.Before(before))
	assert.False(t, completedAt.After(time.Now()))
}

func TestWorkOrderCancelPaths(t *testing.T) {
	t.Parallel()

	// Cancellable from draft and scheduled, not while in progress.
	tm := wftest.NewTestMachine(t, docflows.NewWorkOrderConfig())
	tm.MustTransition(docflows.WOCancel, nil)
	assert.Equal(t, docflows.WOCancelled, tm.Current())

	tm2 := wftest.NewTestMachine(t, docflows.NewWorkOrderConfig())
	tm2.UpdateContext(map[string]any{docflows.KeyAssigneeID: "tech-1"})
	tm2.MustTransition(docflows.WOSchedule, nil)
	tm2.MustTransition(docflows.WOStart, nil)
	tm2.MustFail(docflows.WOCancel, nil)
}
