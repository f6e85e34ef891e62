package docflows_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-core/docflows"
	"github.com/satriyop/enter365-core/workflow"
	wftest "github.com/satriyop/enter365-core/workflow/testing"
)

func TestInvoiceConfigIsSound(t *testing.T) {
	t.Parallel()

	config := docflows.NewInvoiceConfig()

	require.NoError(t, config.Validate())
	assert.Empty(t, config.UnreachableStates())
	assert.Equal(t, []string{docflows.InvoiceCancelled, docflows.InvoicePaid}, config.FinalStates())
}

func TestInvoicePaymentLifecycle(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())
	tm.UpdateContext(map[string]any{docflows.KeyTotalAmount: 1_000_000.0})

	tm.MustTransition(docflows.InvoiceIssue, nil)
	tm.MustTransition(docflows.InvoiceRecordPayment,
		map[string]any{docflows.PayloadAmount: 400_000.0})

	assert.Equal(t, docflows.InvoicePartiallyPaid, tm.Current())
	tm.Assert(wftest.ContextContains(docflows.KeyPaidAmount, 400_000.0))

	// A payment reaching the total is rejected; settlement closes instead.
	result := tm.MustFail(docflows.InvoiceRecordPayment,
		map[string]any{docflows.PayloadAmount: 600_000.0})
	require.ErrorIs(t, result.Err, workflow.ErrGuardRejected)

	result = tm.MustTransition(docflows.InvoiceSettle, nil)
	assert.True(t, result.State.Done)
	tm.Assert(wftest.ContextContains(docflows.KeyPaidAmount, 1_000_000.0))
}

func TestInvoiceIssueRequiresPositiveTotal(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())

	result := tm.MustFail(docflows.InvoiceIssue, nil)
	assert.EqualError(t, result.Err, "invoice total must be greater than zero")
}

func TestInvoiceOverdueStillAcceptsPayments(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())
	tm.UpdateContext(map[string]any{
		docflows.KeyTotalAmount: 500.0,
		docflows.KeyDueDate:     time.Now().Add(-time.Hour),
	})

	tm.MustTransition(docflows.InvoiceIssue, nil)
	tm.MustTransition(docflows.InvoiceMarkOverdue, nil)
	assert.Equal(t, docflows.InvoiceOverdue, tm.Current())

	// No cancellation from overdue, only payment or settlement.
	tm.MustFail(docflows.InvoiceCancel, nil)

	tm.MustTransition(docflows.InvoiceRecordPayment, map[string]any{docflows.PayloadAmount: 100.0})
	assert.Equal(t, docflows.InvoicePartiallyPaid, tm.Current())

	result := tm.MustTransition(docflows.InvoiceSettle, nil)
	assert.True(t, result.State.Done)
}

func TestInvoiceMarkOverdueBeforeDueDateRejected(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())
	tm.UpdateContext(map[string]any{
		docflows.KeyTotalAmount: 500.0,
		docflows.KeyDueDate:     time.Now().Add(time.Hour),
	})

	tm.MustTransition(docflows.InvoiceIssue, nil)

	result := tm.MustFail(docflows.InvoiceMarkOverdue, nil)
	assert.EqualError(t, result.Err, "invoice due date has not passed yet")
}

func TestInvoiceCancelOnlyBeforePayments(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())
	tm.UpdateContext(map[string]any{docflows.KeyTotalAmount: 500.0})

	tm.MustTransition(docflows.InvoiceIssue, nil)
	tm.MustTransition(docflows.InvoiceCancel, nil)
	assert.Equal(t, docflows.InvoiceCancelled, tm.Current())

	tm2 := wftest.NewTestMachine(t, docflows.NewInvoiceConfig())
	tm2.UpdateContext(map[string]any{
		docflows.KeyTotalAmount: 500.0,
		docflows.KeyPaidAmount:  100.0,
	})

	tm2.MustTransition(docflows.InvoiceIssue, nil)

	result := tm2.MustFail(docflows.InvoiceCancel, nil)
	assert.EqualError(t, result.Err, "invoice with recorded payments cannot be cancelled")
}
