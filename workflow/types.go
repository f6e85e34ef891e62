// Package workflow provides a declarative finite-state machine for document
// lifecycles. A Config describes the chart (states, guarded transitions,
// entry/exit hooks); a Machine interprets one Config against a mutable
// Context and announces successful transitions on an injected event channel.
package workflow

import "context"

// Event triggers a transition. Data carries domain payload (a monetary
// amount, a rejection reason) that guards and actions may read and write
// into the machine context.
type Event struct {
	Type string
	Data map[string]any
}

// Trigger builds a bare event with no payload.
func Trigger(eventType string) Event {
	return Event{Type: eventType}
}

// Float reads a numeric payload field, accepting int, int64, and float64
// representations.
func (e Event) Float(key string) (float64, bool) {
	switch n := e.Data[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}

	return 0, false
}

// String reads a string payload field.
func (e Event) String(key string) (string, bool) {
	s, ok := e.Data[key].(string)

	return s, ok
}

// Guard decides whether a transition may proceed. Guards must be pure: no
// mutation of the context, no side effects, because CanTransition evaluates
// them speculatively.
type Guard func(c *Context, e Event) bool

// ActionFunc runs a transition side effect. Actions may block and may mutate
// the context; an error aborts the transition and rolls the context back.
type ActionFunc func(ctx context.Context, c *Context, e Event) error

// Hook runs on state entry or exit.
type Hook func(ctx context.Context, c *Context) error

// Transition describes one edge of the chart: the target state plus an
// optional guard and side-effect actions, executed in declared order.
type Transition struct {
	Target       string
	Guard        Guard
	GuardMessage string
	Actions      []ActionFunc
}

// To builds the bare, unconditional, action-free form of a transition.
func To(target string) Transition {
	return Transition{Target: target}
}

// State configures one node of the chart. On declares every event the state
// accepts; an event absent from On fails with a no-transition result. Final
// marks workflow completion; by convention final states declare no outgoing
// transitions, though nothing structurally forbids it.
type State struct {
	Label       string
	Description string
	Final       bool
	OnEnter     Hook
	OnExit      Hook
	On          map[string]Transition
}

// MachineState is the runtime view of a machine: the current state name, a
// context snapshot, the state's config, and whether the state is terminal.
type MachineState struct {
	Value   string
	Context map[string]any
	Config  State
	Done    bool
}

// Result reports the outcome of a Transition call. The machine never fails
// by panic or returned Go error: all failure travels in Err with Success
// false, and a failed transition leaves the machine observably unchanged.
type Result struct {
	Success bool
	State   MachineState
	Err     error
}
