// Package docflows carries the workflow definition for each document type:
// quotation, purchase order, invoice, and work order. Each definition is
// pure data plus guard/action closures over the generic workflow engine;
// the engine itself is identical across all of them.
package docflows

import (
	"context"
	"maps"
	"time"

	"github.com/satriyop/enter365-core/workflow"
)

// Context keys shared across document workflows. Guards and actions read
// and write these; the surrounding application seeds them per document.
const (
	KeyID             = "id"
	KeyVendorID       = "vendorId"
	KeyCustomerID     = "customerId"
	KeyTotalAmount    = "totalAmount"
	KeyReceivedAmount = "receivedAmount"
	KeyPaidAmount     = "paidAmount"
	KeyValidUntil     = "validUntil"
	KeyDueDate        = "dueDate"
	KeyRejectReason   = "rejectReason"
	KeyHoldReason     = "holdReason"
	KeyAssigneeID     = "assigneeId"
	KeyCompletedAt    = "completedAt"
)

// Event payload keys.
const (
	PayloadAmount = "amount"
	PayloadReason = "reason"
)

// newMachine parameterizes a shared config for one document by merging the
// per-document seed over the blueprint defaults.
func newMachine(
	config *workflow.Config, seed map[string]any, opts ...workflow.Option,
) (*workflow.Machine, error) {
	merged := make(map[string]any, len(config.Seed)+len(seed))
	maps.Copy(merged, config.Seed)
	maps.Copy(merged, seed)

	parameterized := *config
	parameterized.Seed = merged

	return workflow.New(&parameterized, opts...)
}

// totalPositive guards submission-like events: the document must carry a
// positive total amount.
func totalPositive(c *workflow.Context, _ workflow.Event) bool {
	total, ok := c.GetFloat(KeyTotalAmount)

	return ok && total > 0
}

// datePast reports whether the context holds the key and its time is past.
func datePast(c *workflow.Context, key string) bool {
	deadline, ok := c.GetTime(key)

	return ok && time.Now().After(deadline)
}

// storeReason copies the event's reason payload into the given context key.
func storeReason(key string) workflow.ActionFunc {
	return func(_ context.Context, c *workflow.Context, e workflow.Event) error {
		if reason, ok := e.String(PayloadReason); ok {
			c.Set(key, reason)
		}

		return nil
	}
}

// clearKey deletes a context key, e.g. the rejection reason on resubmission.
func clearKey(key string) workflow.ActionFunc {
	return func(_ context.Context, c *workflow.Context, _ workflow.Event) error {
		c.Delete(key)

		return nil
	}
}
