package workflow

import (
	"fmt"
	"sort"
)

// Config is the immutable blueprint of one document workflow: the chart of
// states and guarded transitions, plus the context seed every new machine of
// this type starts from. One Config instance serves a whole document type;
// individual documents parameterize it through the seed override passed to
// the machine factory.
type Config struct {
	ID      string
	Initial string
	Seed    map[string]any
	States  map[string]State
}

// Validate checks the chart shape: non-empty ID and initial state, the
// initial state exists, every declared event type is non-empty, and every
// transition target exists. Unreachable states are legal (Validate does not
// fail on them); UnreachableStates reports them for diagnostics.
func (c *Config) Validate() error {
	if c.ID == "" {
		return ErrConfigIDRequired
	}

	if c.Initial == "" {
		return ErrInitialRequired
	}

	if len(c.States) == 0 {
		return ErrStatesRequired
	}

	if _, ok := c.States[c.Initial]; !ok {
		return fmt.Errorf("%w: %s", ErrInitialNotFound, c.Initial)
	}

	for name, state := range c.States {
		for eventType, transition := range state.On {
			if eventType == "" {
				return fmt.Errorf("state %s: %w", name, ErrEventTypeRequired)
			}

			if _, ok := c.States[transition.Target]; !ok {
				return fmt.Errorf("state %s, event %s: %w: %s",
					name, eventType, ErrTargetNotFound, transition.Target)
			}
		}
	}

	return nil
}

// UnreachableStates returns the names of states that no transition path from
// the initial state can reach, sorted. A healthy chart returns an empty
// slice; a non-empty result usually means a definition lost an edge in a
// refactor.
func (c *Config) UnreachableStates() []string {
	reachable := map[string]bool{c.Initial: true}

	queue := []string{c.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, transition := range c.States[current].On {
			if !reachable[transition.Target] {
				reachable[transition.Target] = true
				queue = append(queue, transition.Target)
			}
		}
	}

	var orphans []string

	for name := range c.States {
		if !reachable[name] {
			orphans = append(orphans, name)
		}
	}

	sort.Strings(orphans)

	return orphans
}

// FinalStates returns the names of all final states, sorted.
func (c *Config) FinalStates() []string {
	var finals []string

	for name, state := range c.States {
		if state.Final {
			finals = append(finals, name)
		}
	}

	sort.Strings(finals)

	return finals
}
