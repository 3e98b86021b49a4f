//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
)

type verifyFixture struct {
	payments *fakePaymentRepo
	gateway  *fakeGateway
	clock    *clock.MockClock
	uc       commands.VerifyCommands
}

func newVerifyFixture(recs ...*payment.Record) *verifyFixture {
	f := &verifyFixture{
		payments: newFakePaymentRepo(recs...),
		gateway:  newFakeGateway("razorpay"),
		clock:    clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewVerifyUseCase(f.payments, newFakeRegistry(f.gateway), f.clock, discardLogger())
	return f
}

func pendingRecord(orderID string) *payment.Record {
	return &payment.Record{
		OrderID:     orderID,
		Gateway:     "razorpay",
		AmountPaise: 129900,
		Currency:    "INR",
		Status:      payment.StatusPending,
	}
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()
	const orderID = "order_abc123"
	const paymentID = "pay_def456"

	t.Run("unknown order", func(t *testing.T) {
		f := newVerifyFixture()
		_, err := f.uc.VerifyPayment(ctx, "order_missing", paymentID, "sig")
		assert.ErrorIs(t, err, commands.ErrPaymentNotFound)
	})

	t.Run("valid signature marks the payment paid", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))
		sig := f.gateway.sign(orderID, paymentID)

		result, err := f.uc.VerifyPayment(ctx, orderID, paymentID, sig)
		require.NoError(t, err)
		assert.True(t, result.Verified)

		rec := f.payments.records[orderID]
		assert.Equal(t, payment.StatusPaid, rec.Status)
		require.NotNil(t, rec.GatewayPaymentID)
		assert.Equal(t, paymentID, *rec.GatewayPaymentID)
		require.NotNil(t, rec.PaidAt)
		assert.Equal(t, f.clock.Now(), *rec.PaidAt)
	})

	t.Run("invalid signature is a negative result, not an error", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))

		result, err := f.uc.VerifyPayment(ctx, orderID, paymentID, "0000000000000000000000000000000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, payment.StatusPending, f.payments.records[orderID].Status)
	})

	t.Run("malformed ids are rejected before signature work", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))
		sig := f.gateway.sign(orderID, "txn_wrongprefix")

		result, err := f.uc.VerifyPayment(ctx, orderID, "txn_wrongprefix", sig)
		require.NoError(t, err)
		assert.False(t, result.Verified)
	})

	t.Run("duplicate callback with the same payment id is idempotent", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))
		sig := f.gateway.sign(orderID, paymentID)

		first, err := f.uc.VerifyPayment(ctx, orderID, paymentID, sig)
		require.NoError(t, err)
		require.True(t, first.Verified)

		second, err := f.uc.VerifyPayment(ctx, orderID, paymentID, sig)
		require.NoError(t, err)
		assert.True(t, second.Verified)
		assert.Equal(t, payment.StatusPaid, f.payments.records[orderID].Status)
	})

	t.Run("settled order with a different payment id conflicts", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))

		firstSig := f.gateway.sign(orderID, paymentID)
		_, err := f.uc.VerifyPayment(ctx, orderID, paymentID, firstSig)
		require.NoError(t, err)

		otherSig := f.gateway.sign(orderID, "pay_other99")
		_, err = f.uc.VerifyPayment(ctx, orderID, "pay_other99", otherSig)
		assert.ErrorIs(t, err, commands.ErrPaymentStateConflict)
	})

	t.Run("repository failure surfaces as a database error", func(t *testing.T) {
		f := newVerifyFixture(pendingRecord(orderID))
		f.payments.findErr = errs.New("connection reset")

		_, err := f.uc.VerifyPayment(ctx, orderID, paymentID, "sig")
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
