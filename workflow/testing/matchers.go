package testing

import (
	"errors"
	"fmt"
)

// Matcher errors.
var (
	ErrStateNotReached    = errors.New("state was not reached")
	ErrTransitionNotTaken = errors.New("transition was not taken")
	ErrContextKeyMissing  = errors.New("context key does not exist")
	ErrContextValue       = errors.New("context value mismatch")
)

// Matcher is an assertion over a test machine's trace and current state.
type Matcher interface {
	Match(tm *TestMachine) (bool, error)
	Description() string
}

// StateWasReached matches when some successful transition landed on the
// state, or the machine currently sits on it.
func StateWasReached(name string) Matcher {
	return &stateReachedMatcher{name: name}
}

type stateReachedMatcher struct {
	name string
}

func (m *stateReachedMatcher) Match(tm *TestMachine) (bool, error) {
	if tm.Current() == m.name {
		return true, nil
	}

	for _, entry := range tm.Trace() {
		if entry.Success && entry.To == m.name {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: %q", ErrStateNotReached, m.name)
}

func (m *stateReachedMatcher) Description() string {
	return fmt.Sprintf("state %q should be reached", m.name)
}

// TransitionWasTaken matches when a successful transition moved from one
// state to the other.
func TransitionWasTaken(from, to string) Matcher {
	return &transitionTakenMatcher{from: from, to: to}
}

type transitionTakenMatcher struct {
	from string
	to   string
}

func (m *transitionTakenMatcher) Match(tm *TestMachine) (bool, error) {
	for _, entry := range tm.Trace() {
		if entry.Success && entry.From == m.from && entry.To == m.to {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: %q -> %q", ErrTransitionNotTaken, m.from, m.to)
}

func (m *transitionTakenMatcher) Description() string {
	return fmt.Sprintf("transition %q -> %q should be taken", m.from, m.to)
}

// ContextContains matches when the machine's current context holds the key
// with the given value.
func ContextContains(key string, value any) Matcher {
	return &contextContainsMatcher{key: key, value: value}
}

type contextContainsMatcher struct {
	key   string
	value any
}

func (m *contextContainsMatcher) Match(tm *TestMachine) (bool, error) {
	actual, ok := tm.State().Context[m.key]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrContextKeyMissing, m.key)
	}

	if actual != m.value {
		return false, fmt.Errorf("%w: key %q has %v, want %v", ErrContextValue, m.key, actual, m.value)
	}

	return true, nil
}

func (m *contextContainsMatcher) Description() string {
	return fmt.Sprintf("context should contain %q = %v", m.key, m.value)
}
