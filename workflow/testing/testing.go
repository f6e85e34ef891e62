// Package testing provides utilities for exercising workflow charts in
// tests: a machine wrapper that records every transition attempt, and
// matchers over the recorded trace.
package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-core/workflow"
)

// TestMachine wraps a Machine with a transition trace for assertions.
type TestMachine struct {
	*workflow.Machine

	t     *testing.T
	trace []TraceEntry
}

// TraceEntry records one Transition call.
type TraceEntry struct {
	From    string
	To      string
	Event   string
	Success bool
	Err     error
}

// NewTestMachine builds a machine from the config and wraps it.
func NewTestMachine(t *testing.T, config *workflow.Config, opts ...workflow.Option) *TestMachine {
	t.Helper()

	machine, err := workflow.New(config, opts...)
	require.NoError(t, err, "failed to create machine")

	return &TestMachine{
		Machine: machine,
		t:       t,
	}
}

// Transition applies the event and records it in the trace.
func (tm *TestMachine) Transition(event workflow.Event) workflow.Result {
	from := tm.Current()
	result := tm.Machine.Transition(context.Background(), event)

	tm.trace = append(tm.trace, TraceEntry{
		From:    from,
		To:      result.State.Value,
		Event:   event.Type,
		Success: result.Success,
		Err:     result.Err,
	})

	return result
}

// MustTransition applies the event and fails the test unless it succeeds.
func (tm *TestMachine) MustTransition(eventType string, data map[string]any) workflow.Result {
	tm.t.Helper()

	result := tm.Transition(workflow.Event{Type: eventType, Data: data})
	require.True(tm.t, result.Success, "transition %q from %q failed: %v",
		eventType, tm.trace[len(tm.trace)-1].From, result.Err)

	return result
}

// MustFail applies the event and fails the test unless it is rejected.
func (tm *TestMachine) MustFail(eventType string, data map[string]any) workflow.Result {
	tm.t.Helper()

	result := tm.Transition(workflow.Event{Type: eventType, Data: data})
	require.False(tm.t, result.Success, "transition %q unexpectedly succeeded", eventType)

	return result
}

// Trace returns the recorded transition attempts in order.
func (tm *TestMachine) Trace() []TraceEntry {
	return tm.trace
}

// Assert evaluates matchers against the trace and reports each failure.
func (tm *TestMachine) Assert(matchers ...Matcher) {
	tm.t.Helper()

	for _, matcher := range matchers {
		ok, err := matcher.Match(tm)
		if !ok {
			tm.t.Errorf("assertion failed: %s: %v", matcher.Description(), err)
		}
	}
}
