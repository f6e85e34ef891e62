package docflows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-core/docflows"
	"github.com/satriyop/enter365-core/workflow"
	wftest "github.com/satriyop/enter365-core/workflow/testing"
)

func TestPurchaseOrderConfigIsSound(t *testing.T) {
	t.Parallel()

	config := docflows.NewPurchaseOrderConfig()

	require.NoError(t, config.Validate())
	assert.Empty(t, config.UnreachableStates())
	assert.Equal(t, []string{docflows.POCancelled, docflows.POReceived}, config.FinalStates())
}

func TestPurchaseOrderFullLifecycle(t *testing.T) {
	t.Parallel()

	machine, err := docflows.NewPurchaseOrderMachine(map[string]any{
		docflows.KeyID:          "PO-001",
		docflows.KeyVendorID:    5,
		docflows.KeyTotalAmount: 2_000_000.0,
	})
	require.NoError(t, err)

	for _, event := range []string{
		docflows.POSubmit,
		docflows.POApprove,
		docflows.POSendToVendor,
		docflows.POReceiveFull,
	} {
		result := machine.Transition(t.Context(), workflow.Trigger(event))
		require.True(t, result.Success, "transition %q failed: %v", event, result.Err)
	}

	state := machine.State()
	assert.Equal(t, docflows.POReceived, state.Value)
	assert.True(t, state.Done)

	received, ok := state.Context[docflows.KeyReceivedAmount].(float64)
	require.True(t, ok)
	assert.InDelta(t, 2_000_000.0, received, 1e-6)

	assert.Empty(t, machine.AvailableTransitions())
}

func TestPurchaseOrderSubmitGuards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed map[string]any
		ok   bool
	}{
		{
			name: "no vendor",
			seed: map[string]any{docflows.KeyTotalAmount: 1000.0},
		},
		{
			name: "empty string vendor",
			seed: map[string]any{docflows.KeyVendorID: "", docflows.KeyTotalAmount: 1000.0},
		},
		{
			name: "zero vendor id",
			seed: map[string]any{docflows.KeyVendorID: 0, docflows.KeyTotalAmount: 1000.0},
		},
		{
			name: "zero total",
			seed: map[string]any{docflows.KeyVendorID: 5},
		},
		{
			name: "vendor and total",
			seed: map[string]any{docflows.KeyVendorID: 5, docflows.KeyTotalAmount: 1000.0},
			ok:   true,
		},
		{
			name: "string vendor id",
			seed: map[string]any{docflows.KeyVendorID: "V-9", docflows.KeyTotalAmount: 1000.0},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			machine, err := docflows.NewPurchaseOrderMachine(tt.seed)
			require.NoError(t, err)

			assert.Equal(t, tt.ok, machine.CanTransition(docflows.POSubmit))
		})
	}
}

func TestPurchaseOrderPartialReceipts(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewPurchaseOrderConfig())
	tm.UpdateContext(map[string]any{
		docflows.KeyVendorID:    7,
		docflows.KeyTotalAmount: 1_000.0,
	})

	tm.MustTransition(docflows.POSubmit, nil)
	tm.MustTransition(docflows.POApprove, nil)
	tm.MustTransition(docflows.POSendToVendor, nil)

	// Partial receipts accumulate and loop on the sent state.
	tm.MustTransition(docflows.POReceivePartial, map[string]any{docflows.PayloadAmount: 300.0})
	tm.MustTransition(docflows.POReceivePartial, map[string]any{docflows.PayloadAmount: 400.0})

	assert.Equal(t, docflows.POSent, tm.Current())
	tm.Assert(wftest.ContextContains(docflows.KeyReceivedAmount, 700.0))

	// A partial receipt that would reach or pass the total is rejected.
	result := tm.MustFail(docflows.POReceivePartial, map[string]any{docflows.PayloadAmount: 300.0})
	require.ErrorIs(t, result.Err, workflow.ErrGuardRejected)
	assert.EqualError(t, result.Err, "partial receipt must stay below the order total")

	tm.MustFail(docflows.POReceivePartial, map[string]any{docflows.PayloadAmount: 999.0})
	tm.MustFail(docflows.POReceivePartial, nil)
	tm.MustFail(docflows.POReceivePartial, map[string]any{docflows.PayloadAmount: -5.0})

	tm.Assert(wftest.ContextContains(docflows.KeyReceivedAmount, 700.0))

	// Full receipt closes the order at the exact total.
	result = tm.MustTransition(docflows.POReceiveFull, nil)
	assert.True(t, result.State.Done)
	tm.Assert(wftest.ContextContains(docflows.KeyReceivedAmount, 1_000.0))
}

func TestPurchaseOrderRejectionRoundTrip(t *testing.T) {
	t.Parallel()

	tm := wftest.NewTestMachine(t, docflows.NewPurchaseOrderConfig())
	tm.UpdateContext(map[string]any{
		docflows.KeyVendorID:    3,
		docflows.KeyTotalAmount: 500.0,
	})

	tm.MustTransition(docflows.POSubmit, nil)
	tm.MustTransition(docflows.POReject, map[string]any{docflows.PayloadReason: "wrong vendor"})
	tm.Assert(wftest.ContextContains(docflows.KeyRejectReason, "wrong vendor"))

	tm.MustTransition(docflows.POSubmit, nil)

	_, ok := tm.State().Context[docflows.KeyRejectReason]
	assert.False(t, ok)
	assert.Equal(t, docflows.POSubmitted, tm.Current())
}
