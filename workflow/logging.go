package workflow

import (
	"context"
	"log/slog"
	"time"
)

// Logger provides logging hooks for machine execution. A nil logger on the
// machine disables logging entirely.
type Logger interface {
	TransitionSucceeded(ctx context.Context, machine, from, to, event string, duration time.Duration)
	TransitionRejected(ctx context.Context, machine, state, event string, err error)
	ActionExecuted(ctx context.Context, machine, state, event string, index int, err error)
}

// DefaultLogger implements Logger on slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger backed by slog.Default.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{logger: slog.Default()}
}

// NewLoggerWith creates a logger backed by the given slog logger.
func NewLoggerWith(logger *slog.Logger) *DefaultLogger {
	return &DefaultLogger{logger: logger}
}

func (l *DefaultLogger) TransitionSucceeded(
	ctx context.Context, machine, from, to, event string, duration time.Duration,
) {
	l.logger.InfoContext(ctx, "Transition succeeded",
		"machine", machine,
		"from", from,
		"to", to,
		"event", event,
		"duration_ms", duration.Milliseconds(),
	)
}

func (l *DefaultLogger) TransitionRejected(
	ctx context.Context, machine, state, event string, err error,
) {
	l.logger.WarnContext(ctx, "Transition rejected",
		"machine", machine,
		"state", state,
		"event", event,
		"error", err,
	)
}

func (l *DefaultLogger) ActionExecuted(
	ctx context.Context, machine, state, event string, index int, err error,
) {
	if err != nil {
		l.logger.ErrorContext(ctx, "Action failed",
			"machine", machine,
			"state", state,
			"event", event,
			"action_index", index,
			"error", err,
		)

		return
	}

	l.logger.DebugContext(ctx, "Action executed",
		"machine", machine,
		"state", state,
		"event", event,
		"action_index", index,
	)
}
