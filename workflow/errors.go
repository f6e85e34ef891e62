package workflow

import (
	"errors"
	"fmt"
)

// Sentinel errors. Result.Err values wrap one of these, so callers can
// branch with errors.Is regardless of the message text.
var (
	// ErrNoTransition indicates the requested event is not declared for the
	// current state. Non-fatal; the machine is unchanged.
	ErrNoTransition = errors.New("no transition")
	// ErrGuardRejected indicates the transition is declared, but its guard
	// returned false. Non-fatal; the machine is unchanged.
	ErrGuardRejected = errors.New("guard rejected")
	// ErrInvalidTarget indicates a transition names a state absent from the
	// config. This is a malformed chart, a programming defect rather than a
	// runtime condition.
	ErrInvalidTarget = errors.New("invalid transition target")

	// ErrNilConfig indicates New was called without a config.
	ErrNilConfig = errors.New("config is required")
	// ErrConfigIDRequired indicates the chart has no ID.
	ErrConfigIDRequired = errors.New("config id is required")
	// ErrInitialRequired indicates the chart has no initial state.
	ErrInitialRequired = errors.New("initial state is required")
	// ErrStatesRequired indicates the chart declares no states.
	ErrStatesRequired = errors.New("at least one state is required")
	// ErrInitialNotFound indicates the initial state does not exist.
	ErrInitialNotFound = errors.New("initial state does not exist")
	// ErrTargetNotFound indicates a transition target does not exist.
	ErrTargetNotFound = errors.New("transition target does not exist")
	// ErrEventTypeRequired indicates a state declares a transition under an
	// empty event type.
	ErrEventTypeRequired = errors.New("event type is required")

	// ErrUnknownGuard indicates a YAML chart references a guard name absent
	// from the registry.
	ErrUnknownGuard = errors.New("unknown guard")
	// ErrUnknownAction indicates a YAML chart references an action name
	// absent from the registry.
	ErrUnknownAction = errors.New("unknown action")
)

// NoTransitionError reports an event the current state does not accept.
type NoTransitionError struct {
	Event string
	State string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition '%s' from state '%s'", e.Event, e.State)
}

func (e *NoTransitionError) Unwrap() error {
	return ErrNoTransition
}

// GuardError reports a guard rejection, carrying the chart's guard message
// when one is declared.
type GuardError struct {
	Event   string
	State   string
	Message string
}

func (e *GuardError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("transition '%s' from state '%s' not allowed", e.Event, e.State)
}

func (e *GuardError) Unwrap() error {
	return ErrGuardRejected
}

// TargetError reports a transition whose target is missing from the config.
type TargetError struct {
	Event  string
	State  string
	Target string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("transition '%s' from state '%s' targets unknown state '%s'",
		e.Event, e.State, e.Target)
}

func (e *TargetError) Unwrap() error {
	return ErrInvalidTarget
}

// HookError wraps an error thrown by an entry/exit hook or a transition
// action, identifying the phase that failed.
type HookError struct {
	State string
	Phase string // "exit", "action", "enter"
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s of state '%s': %v", e.Phase, e.State, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
