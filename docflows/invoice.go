package docflows

import (
	"context"

	"github.com/satriyop/enter365-core/workflow"
)

// Invoice states.
const (
	InvoiceDraft         = "draft"
	InvoiceIssued        = "issued"
	InvoicePartiallyPaid = "partially_paid"
	InvoiceOverdue       = "overdue"
	InvoicePaid          = "paid"
	InvoiceCancelled     = "cancelled"
)

// Invoice events.
const (
	InvoiceIssue         = "ISSUE"
	InvoiceRecordPayment = "RECORD_PAYMENT"
	InvoiceSettle        = "SETTLE"
	InvoiceMarkOverdue   = "MARK_OVERDUE"
	InvoiceCancel        = "CANCEL"
)

// canRecordPayment mirrors the purchase order receipt rule: a payment must
// be positive and keep the paid amount strictly below the invoice total;
// reaching the total goes through SETTLE.
func canRecordPayment(c *workflow.Context, e workflow.Event) bool {
	amount, ok := e.Float(PayloadAmount)
	if !ok || amount <= 0 {
		return false
	}

	total, _ := c.GetFloat(KeyTotalAmount)
	paid, _ := c.GetFloat(KeyPaidAmount)

	return paid+amount < total
}

func accumulatePaid(_ context.Context, c *workflow.Context, e workflow.Event) error {
	amount, _ := e.Float(PayloadAmount)
	paid, _ := c.GetFloat(KeyPaidAmount)
	c.Set(KeyPaidAmount, paid+amount)

	return nil
}

func settleInFull(_ context.Context, c *workflow.Context, _ workflow.Event) error {
	total, _ := c.GetFloat(KeyTotalAmount)
	c.Set(KeyPaidAmount, total)

	return nil
}

func nothingPaid(c *workflow.Context, _ workflow.Event) bool {
	paid, _ := c.GetFloat(KeyPaidAmount)

	return paid == 0
}

// NewInvoiceConfig builds the invoice chart. An issued invoice accumulates
// partial payments, can be marked overdue past its due date (payments stay
// possible), and settles in full to close.
func NewInvoiceConfig() *workflow.Config {
	overdue := func(c *workflow.Context, _ workflow.Event) bool {
		return datePast(c, KeyDueDate)
	}

	paymentTransitions := map[string]workflow.Transition{
		InvoiceRecordPayment: {
			Target:       InvoicePartiallyPaid,
			Guard:        canRecordPayment,
			GuardMessage: "payment must stay below the invoice total",
			Actions:      []workflow.ActionFunc{accumulatePaid},
		},
		InvoiceSettle: {
			Target:  InvoicePaid,
			Actions: []workflow.ActionFunc{settleInFull},
		},
		InvoiceMarkOverdue: {
			Target:       InvoiceOverdue,
			Guard:        overdue,
			GuardMessage: "invoice due date has not passed yet",
		},
	}

	issuedOn := map[string]workflow.Transition{
		InvoiceCancel: {
			Target:       InvoiceCancelled,
			Guard:        nothingPaid,
			GuardMessage: "invoice with recorded payments cannot be cancelled",
		},
	}
	for event, transition := range paymentTransitions {
		issuedOn[event] = transition
	}

	return &workflow.Config{
		ID:      "invoice",
		Initial: InvoiceDraft,
		Seed: map[string]any{
			KeyTotalAmount: 0.0,
			KeyPaidAmount:  0.0,
		},
		States: map[string]workflow.State{
			InvoiceDraft: {
				Label: "Draft",
				On: map[string]workflow.Transition{
					InvoiceIssue: {
						Target:       InvoiceIssued,
						Guard:        totalPositive,
						GuardMessage: "invoice total must be greater than zero",
					},
					InvoiceCancel: workflow.To(InvoiceCancelled),
				},
			},
			InvoiceIssued: {
				Label: "Issued",
				On:    issuedOn,
			},
			InvoicePartiallyPaid: {
				Label: "Partially Paid",
				On:    paymentTransitions,
			},
			InvoiceOverdue: {
				Label: "Overdue",
				On: map[string]workflow.Transition{
					InvoiceRecordPayment: paymentTransitions[InvoiceRecordPayment],
					InvoiceSettle:        paymentTransitions[InvoiceSettle],
				},
			},
			InvoicePaid: {
				Label: "Paid",
				Final: true,
			},
			InvoiceCancelled: {
				Label: "Cancelled",
				Final: true,
			},
		},
	}
}

// NewInvoiceMachine creates a machine for one invoice, seeding the context
// with the document's fields (id, customerId, totalAmount, dueDate).
func NewInvoiceMachine(seed map[string]any, opts ...workflow.Option) (*workflow.Machine, error) {
	return newMachine(NewInvoiceConfig(), seed, opts...)
}
