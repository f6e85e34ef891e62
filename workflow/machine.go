package workflow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/atomic"

	"github.com/satriyop/enter365-core/events"
)

// Machine interprets one Config as a runtime automaton. Each open document
// holds its own Machine; the config is shared and never mutated, the context
// belongs to this instance alone.
//
// Transition calls are serialized by an internal mutex: a second concurrent
// call waits for the first and then observes the post-transition state. A
// failed transition is atomic — the context is snapshotted before the exit
// hook runs and restored on any hook or action error, and the state value is
// left at its pre-transition value.
type Machine struct {
	mu      sync.Mutex
	config  *Config
	id      string
	docID   string
	current string
	context *Context

	publisher     events.Publisher
	logger        Logger
	clock         func() time.Time
	transitioning atomic.Bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithPublisher sets the lifecycle event publisher. The default discards
// events.
func WithPublisher(publisher events.Publisher) Option {
	return func(m *Machine) {
		m.publisher = publisher
	}
}

// WithLogger sets the transition logger. The default is no logging.
func WithLogger(logger Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithDocumentID sets the document identity carried on published events.
// When unset, the machine falls back to the context's "id" field.
func WithDocumentID(id string) Option {
	return func(m *Machine) {
		m.docID = id
	}
}

// WithClock replaces time.Now for event timestamps. Tests use this for
// deterministic events.
func WithClock(clock func() time.Time) Option {
	return func(m *Machine) {
		m.clock = clock
	}
}

// New validates the config and creates a machine at the initial state with
// a context seeded from the blueprint.
func New(config *Config, opts ...Option) (*Machine, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	machine := &Machine{
		config:    config,
		id:        uuid.NewString(),
		current:   config.Initial,
		context:   NewContext(config.Seed),
		publisher: events.NopPublisher{},
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(machine)
	}

	return machine, nil
}

// ID returns the machine instance identifier.
func (m *Machine) ID() string {
	return m.id
}

// Current returns the current state name.
func (m *Machine) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// State returns the runtime view: state name, context snapshot, state
// config, and the terminal flag.
func (m *Machine) State() MachineState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stateLocked()
}

// IsTransitioning reports whether a Transition call is currently executing.
// It is observational: callers that need exclusion rely on the machine's own
// serialization, not on polling this flag.
func (m *Machine) IsTransitioning() bool {
	return m.transitioning.Load()
}

// Transition applies one event. On success the machine moves to the target
// state, with the exit hook, the transition's actions in declared order, and
// the entry hook run in between, and a lifecycle event published. Every
// failure mode — undeclared event, guard rejection, unknown target, hook or
// action error — comes back as Success false with the machine unchanged;
// Transition never panics and never returns a Go error directly.
func (m *Machine) Transition(ctx context.Context, event Event) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transitioning.Store(true)
	defer m.transitioning.Store(false)

	start := m.clock()
	from := m.current

	ctx, span := startTransitionSpan(ctx, m.config.ID, m.documentIDLocked(), from, event.Type)
	defer span.End()

	result := m.transitionLocked(ctx, event)

	outcome := outcomeSuccess

	switch {
	case result.Success:
		span.SetStatus(codes.Ok, "completed")
	default:
		outcome = outcomeError
		if errors.Is(result.Err, ErrGuardRejected) {
			outcome = outcomeRejected
		}

		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	}

	transitionsTotal.WithLabelValues(
		m.config.ID, from, sanitizeLabel(resultTarget(result)), event.Type, outcome,
	).Inc()
	transitionDuration.WithLabelValues(m.config.ID, event.Type, outcome).
		Observe(time.Since(start).Seconds())

	if m.logger != nil {
		if result.Success {
			m.logger.TransitionSucceeded(ctx, m.config.ID, from, m.current, event.Type, time.Since(start))
		} else {
			m.logger.TransitionRejected(ctx, m.config.ID, from, event.Type, result.Err)
		}
	}

	return result
}

// transitionLocked runs the lookup/guard/exit/actions/enter sequence. The
// caller holds m.mu.
func (m *Machine) transitionLocked(ctx context.Context, event Event) Result {
	state := m.config.States[m.current]

	transition, ok := state.On[event.Type]
	if !ok {
		return m.failure(&NoTransitionError{Event: event.Type, State: m.current})
	}

	if transition.Guard != nil && !transition.Guard(m.context, event) {
		guardRejectionsTotal.WithLabelValues(m.config.ID, m.current, event.Type).Inc()

		return m.failure(&GuardError{
			Event:   event.Type,
			State:   m.current,
			Message: transition.GuardMessage,
		})
	}

	target, ok := m.config.States[transition.Target]
	if !ok {
		// Validate catches this at construction; hitting it here means the
		// config was mutated after New, a programming defect.
		return m.failure(&TargetError{Event: event.Type, State: m.current, Target: transition.Target})
	}

	snapshot := m.context.Snapshot()

	if state.OnExit != nil {
		err := state.OnExit(ctx, m.context)
		if err != nil {
			m.context.Restore(snapshot)

			return m.failure(&HookError{State: m.current, Phase: "exit", Err: err})
		}
	}

	for i, action := range transition.Actions {
		err := m.runAction(ctx, event, i, action)
		if err != nil {
			m.context.Restore(snapshot)

			return m.failure(&HookError{State: m.current, Phase: "action", Err: err})
		}
	}

	from := m.current
	m.current = transition.Target

	if target.OnEnter != nil {
		err := target.OnEnter(ctx, m.context)
		if err != nil {
			m.current = from
			m.context.Restore(snapshot)

			return m.failure(&HookError{State: transition.Target, Phase: "enter", Err: err})
		}
	}

	m.publisher.PublishTransition(ctx, events.TransitionEvent{
		DocumentType: m.config.ID,
		DocumentID:   m.documentIDLocked(),
		From:         from,
		To:           m.current,
		Event:        event.Type,
		At:           m.clock(),
	})

	return Result{Success: true, State: m.stateLocked()}
}

func (m *Machine) runAction(ctx context.Context, event Event, index int, action ActionFunc) error {
	actionCtx, span := startActionSpan(ctx, m.config.ID, event.Type, index)
	defer span.End()

	err := action(actionCtx, m.context, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "completed")
	}

	if m.logger != nil {
		m.logger.ActionExecuted(actionCtx, m.config.ID, m.current, event.Type, index, err)
	}

	return err
}

// CanTransition reports whether the event is declared for the current state
// and its guard (if any) passes. It evaluates the guard without executing
// anything and has no side effects.
func (m *Machine) CanTransition(eventType string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	transition, ok := m.config.States[m.current].On[eventType]
	if !ok {
		return false
	}

	if transition.Guard == nil {
		return true
	}

	return transition.Guard(m.context, Event{Type: eventType})
}

// AvailableTransitions returns the event types the current state declares,
// sorted. Guards are not evaluated: this reflects the chart's shape, not the
// current context.
func (m *Machine) AvailableTransitions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	on := m.config.States[m.current].On

	types := make([]string, 0, len(on))
	for eventType := range on {
		types = append(types, eventType)
	}

	sort.Strings(types)

	return types
}

// UpdateContext merges fields into the context without transitioning and
// without emitting an event.
func (m *Machine) UpdateContext(fields map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.context.Merge(fields)
}

// Reset returns the machine to the initial state with the context re-seeded
// from the blueprint merged with the optional overrides. No event is
// published.
func (m *Machine) Reset(overrides map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seed := make(map[string]any, len(m.config.Seed)+len(overrides))

	for k, v := range m.config.Seed {
		seed[k] = v
	}

	for k, v := range overrides {
		seed[k] = v
	}

	m.current = m.config.Initial
	m.context = NewContext(seed)
}

// Visualization returns the state/transition graph of this machine's chart.
func (m *Machine) Visualization() Graph {
	return m.config.Graph()
}

func (m *Machine) stateLocked() MachineState {
	config := m.config.States[m.current]

	return MachineState{
		Value:   m.current,
		Context: m.context.Snapshot(),
		Config:  config,
		Done:    config.Final,
	}
}

func (m *Machine) failure(err error) Result {
	return Result{Success: false, State: m.stateLocked(), Err: err}
}

func (m *Machine) documentIDLocked() string {
	if m.docID != "" {
		return m.docID
	}

	if id, ok := m.context.Get("id"); ok {
		return fmt.Sprint(id)
	}

	return ""
}

// resultTarget extracts the post-transition state for metric labels; failed
// transitions label the edge with the unchanged state.
func resultTarget(result Result) string {
	return result.State.Value
}
