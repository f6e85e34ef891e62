package docflows

import (
	"context"
	"time"

	"github.com/satriyop/enter365-core/workflow"
)

// Work order states.
const (
	WODraft      = "draft"
	WOScheduled  = "scheduled"
	WOInProgress = "in_progress"
	WOOnHold     = "on_hold"
	WOCompleted  = "completed"
	WOCancelled  = "cancelled"
)

// Work order events.
const (
	WOSchedule = "SCHEDULE"
	WOStart    = "START"
	WOHold     = "HOLD"
	WOResume   = "RESUME"
	WOComplete = "COMPLETE"
	WOCancel   = "CANCEL"
)

func hasAssignee(c *workflow.Context, _ workflow.Event) bool {
	assignee, ok := c.Get(KeyAssigneeID)
	if !ok || assignee == nil {
		return false
	}

	if s, isString := assignee.(string); isString {
		return s != ""
	}

	return true
}

func recordCompletion(_ context.Context, c *workflow.Context, _ workflow.Event) error {
	c.Set(KeyCompletedAt, time.Now())

	return nil
}

// NewWorkOrderConfig builds the work order chart. A work order needs an
// assignee to be scheduled, can pause on hold and resume, and records its
// completion time on the way to the final state.
func NewWorkOrderConfig() *workflow.Config {
	return &workflow.Config{
		ID:      "work_order",
		Initial: WODraft,
		Seed:    map[string]any{},
		States: map[string]workflow.State{
			WODraft: {
				Label: "Draft",
				On: map[string]workflow.Transition{
					WOSchedule: {
						Target:       WOScheduled,
						Guard:        hasAssignee,
						GuardMessage: "work order needs an assignee before scheduling",
					},
					WOCancel: workflow.To(WOCancelled),
				},
			},
			WOScheduled: {
				Label: "Scheduled",
				On: map[string]workflow.Transition{
					WOStart:  workflow.To(WOInProgress),
					WOCancel: workflow.To(WOCancelled),
				},
			},
			WOInProgress: {
				Label: "In Progress",
				On: map[string]workflow.Transition{
					WOHold: {
						Target:  WOOnHold,
						Actions: []workflow.ActionFunc{storeReason(KeyHoldReason)},
					},
					WOComplete: {
						Target:  WOCompleted,
						Actions: []workflow.ActionFunc{recordCompletion},
					},
				},
			},
			WOOnHold: {
				Label: "On Hold",
				On: map[string]workflow.Transition{
					WOResume: {
						Target:  WOInProgress,
						Actions: []workflow.ActionFunc{clearKey(KeyHoldReason)},
					},
				},
			},
			WOCompleted: {
				Label: "Completed",
				Final: true,
			},
			WOCancelled: {
				Label: "Cancelled",
				Final: true,
			},
		},
	}
}

// NewWorkOrderMachine creates a machine for one work order, seeding the
// context with the document's fields (id, assigneeId).
func NewWorkOrderMachine(seed map[string]any, opts ...workflow.Option) (*workflow.Machine, error) {
	return newMachine(NewWorkOrderConfig(), seed, opts...)
}
