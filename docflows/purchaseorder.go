package docflows

import (
	"context"

	"github.com/satriyop/enter365-core/workflow"
)

// Purchase order states.
const (
	PODraft     = "draft"
	POSubmitted = "submitted"
	POApproved  = "approved"
	PORejected  = "rejected"
	POSent      = "sent"
	POReceived  = "received"
	POCancelled = "cancelled"
)

// Purchase order events.
const (
	POSubmit         = "SUBMIT"
	POApprove        = "APPROVE"
	POReject         = "REJECT"
	POSendToVendor   = "SEND_TO_VENDOR"
	POReceivePartial = "RECEIVE_PARTIAL"
	POReceiveFull    = "RECEIVE_FULL"
	POCancel         = "CANCEL"
)

// submittable requires a positive total and a selected vendor.
func submittable(c *workflow.Context, e workflow.Event) bool {
	return totalPositive(c, e) && hasVendor(c)
}

func hasVendor(c *workflow.Context) bool {
	vendor, ok := c.Get(KeyVendorID)
	if !ok || vendor == nil {
		return false
	}

	switch v := vendor.(type) {
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	}

	return true
}

// canReceivePartial admits a partial receipt only while it keeps the
// accumulated amount strictly below the order total; reaching the total must
// go through RECEIVE_FULL.
func canReceivePartial(c *workflow.Context, e workflow.Event) bool {
	amount, ok := e.Float(PayloadAmount)
	if !ok || amount <= 0 {
		return false
	}

	total, _ := c.GetFloat(KeyTotalAmount)
	received, _ := c.GetFloat(KeyReceivedAmount)

	return received+amount < total
}

func accumulateReceived(_ context.Context, c *workflow.Context, e workflow.Event) error {
	amount, _ := e.Float(PayloadAmount)
	received, _ := c.GetFloat(KeyReceivedAmount)
	c.Set(KeyReceivedAmount, received+amount)

	return nil
}

func receiveInFull(_ context.Context, c *workflow.Context, _ workflow.Event) error {
	total, _ := c.GetFloat(KeyTotalAmount)
	c.Set(KeyReceivedAmount, total)

	return nil
}

// NewPurchaseOrderConfig builds the purchase order chart. An order needs a
// vendor and a positive total before submission, travels through approval to
// the vendor, and accumulates partial receipts until a full receipt closes
// it.
func NewPurchaseOrderConfig() *workflow.Config {
	return &workflow.Config{
		ID:      "purchase_order",
		Initial: PODraft,
		Seed: map[string]any{
			KeyTotalAmount:    0.0,
			KeyReceivedAmount: 0.0,
		},
		States: map[string]workflow.State{
			PODraft: {
				Label: "Draft",
				On: map[string]workflow.Transition{
					POSubmit: {
						Target:       POSubmitted,
						Guard:        submittable,
						GuardMessage: "purchase order needs a vendor and a positive total",
					},
					POCancel: workflow.To(POCancelled),
				},
			},
			POSubmitted: {
				Label: "Submitted",
				On: map[string]workflow.Transition{
					POApprove: workflow.To(POApproved),
					POReject: {
						Target:  PORejected,
						Actions: []workflow.ActionFunc{storeReason(KeyRejectReason)},
					},
					POCancel: workflow.To(POCancelled),
				},
			},
			POApproved: {
				Label: "Approved",
				On: map[string]workflow.Transition{
					POSendToVendor: workflow.To(POSent),
					POCancel:       workflow.To(POCancelled),
				},
			},
			PORejected: {
				Label: "Rejected",
				On: map[string]workflow.Transition{
					POSubmit: {
						Target:       POSubmitted,
						Guard:        submittable,
						GuardMessage: "purchase order needs a vendor and a positive total",
						Actions:      []workflow.ActionFunc{clearKey(KeyRejectReason)},
					},
				},
			},
			POSent: {
				Label: "Sent to Vendor",
				On: map[string]workflow.Transition{
					POReceivePartial: {
						Target:       POSent,
						Guard:        canReceivePartial,
						GuardMessage: "partial receipt must stay below the order total",
						Actions:      []workflow.ActionFunc{accumulateReceived},
					},
					POReceiveFull: {
						Target:  POReceived,
						Actions: []workflow.ActionFunc{receiveInFull},
					},
				},
			},
			POReceived: {
				Label: "Received",
				Final: true,
			},
			POCancelled: {
				Label: "Cancelled",
				Final: true,
			},
		},
	}
}

// NewPurchaseOrderMachine creates a machine for one purchase order, seeding
// the context with the document's fields (id, vendorId, totalAmount,
// receivedAmount).
func NewPurchaseOrderMachine(seed map[string]any, opts ...workflow.Option) (*workflow.Machine, error) {
	return newMachine(NewPurchaseOrderConfig(), seed, opts...)
}
