package docflows

import (
	"github.com/satriyop/enter365-core/workflow"
)

// Quotation states.
const (
	QuotationDraft     = "draft"
	QuotationSubmitted = "submitted"
	QuotationApproved  = "approved"
	QuotationRejected  = "rejected"
	QuotationConverted = "converted"
	QuotationExpired   = "expired"
	QuotationCancelled = "cancelled"
)

// Quotation events.
const (
	QuotationSubmit  = "SUBMIT"
	QuotationApprove = "APPROVE"
	QuotationReject  = "REJECT"
	QuotationConvert = "CONVERT"
	QuotationExpire  = "EXPIRE"
	QuotationCancel  = "CANCEL"
)

// NewQuotationConfig builds the quotation chart. A quotation is submitted
// for approval once it carries a positive total, can be rejected back to a
// resubmittable state, and once approved is converted into a sales order as
// long as its validity date has not passed.
func NewQuotationConfig() *workflow.Config {
	notExpired := func(c *workflow.Context, _ workflow.Event) bool {
		return !datePast(c, KeyValidUntil)
	}

	expired := func(c *workflow.Context, _ workflow.Event) bool {
		return datePast(c, KeyValidUntil)
	}

	return &workflow.Config{
		ID:      "quotation",
		Initial: QuotationDraft,
		Seed: map[string]any{
			KeyTotalAmount: 0.0,
		},
		States: map[string]workflow.State{
			QuotationDraft: {
				Label: "Draft",
				On: map[string]workflow.Transition{
					QuotationSubmit: {
						Target:       QuotationSubmitted,
						Guard:        totalPositive,
						GuardMessage: "quotation total must be greater than zero",
					},
					QuotationCancel: workflow.To(QuotationCancelled),
				},
			},
			QuotationSubmitted: {
				Label: "Submitted",
				On: map[string]workflow.Transition{
					QuotationApprove: workflow.To(QuotationApproved),
					QuotationReject: {
						Target:  QuotationRejected,
						Actions: []workflow.ActionFunc{storeReason(KeyRejectReason)},
					},
					QuotationCancel: workflow.To(QuotationCancelled),
				},
			},
			QuotationApproved: {
				Label: "Approved",
				On: map[string]workflow.Transition{
					QuotationConvert: {
						Target:       QuotationConverted,
						Guard:        notExpired,
						GuardMessage: "quotation validity date has passed",
					},
					QuotationExpire: {
						Target:       QuotationExpired,
						Guard:        expired,
						GuardMessage: "quotation validity date has not passed yet",
					},
				},
			},
			QuotationRejected: {
				Label: "Rejected",
				On: map[string]workflow.Transition{
					QuotationSubmit: {
						Target:       QuotationSubmitted,
						Guard:        totalPositive,
						GuardMessage: "quotation total must be greater than zero",
						Actions:      []workflow.ActionFunc{clearKey(KeyRejectReason)},
					},
				},
			},
			QuotationConverted: {
				Label: "Converted",
				Final: true,
			},
			QuotationExpired: {
				Label: "Expired",
				Final: true,
			},
			QuotationCancelled: {
				Label: "Cancelled",
				Final: true,
			},
		},
	}
}

// NewQuotationMachine creates a machine for one quotation, seeding the
// context with the document's fields (id, customerId, totalAmount,
// validUntil).
func NewQuotationMachine(seed map[string]any, opts ...workflow.Option) (*workflow.Machine, error) {
	return newMachine(NewQuotationConfig(), seed, opts...)
}
