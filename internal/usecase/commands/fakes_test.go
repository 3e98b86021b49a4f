//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows in result set"), infra.KindNotFound)
}

type fakeGateway struct {
	name     string
	verifier *payment.SignatureVerifier

	createOrderID string
	createErr     error
	refundErr     error

	createdAmounts []int64
	refundedIDs    []string
	refundedPaise  []int64
}

func newFakeGateway(name string) *fakeGateway {
	return &fakeGateway{
		name:          name,
		verifier:      payment.NewSignatureVerifier("fake-secret"),
		createOrderID: "order_fake1",
	}
}

func (g *fakeGateway) Name() string { return g.name }

func (g *fakeGateway) CreateOrder(_ context.Context, amountPaise int64, _, _ string) (string, error) {
	if g.createErr != nil {
		return "", g.createErr
	}
	g.createdAmounts = append(g.createdAmounts, amountPaise)
	return g.createOrderID, nil
}

func (g *fakeGateway) Refund(_ context.Context, paymentID string, amountPaise int64) error {
	if g.refundErr != nil {
		return g.refundErr
	}
	g.refundedIDs = append(g.refundedIDs, paymentID)
	g.refundedPaise = append(g.refundedPaise, amountPaise)
	return nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.verifier.Verify(orderID, paymentID, signature)
}

func (g *fakeGateway) sign(orderID, paymentID string) string {
	return g.verifier.Sign(orderID, paymentID)
}

func (g *fakeGateway) OrderIDPrefix() string   { return "order_" }
func (g *fakeGateway) PaymentIDPrefix() string { return "pay_" }

type fakeRegistry struct {
	gateways map[string]shared.PaymentGateway
}

func newFakeRegistry(gws ...shared.PaymentGateway) *fakeRegistry {
	m := make(map[string]shared.PaymentGateway, len(gws))
	for _, gw := range gws {
		m[gw.Name()] = gw
	}
	return &fakeRegistry{gateways: m}
}

func (r *fakeRegistry) Get(name string) (shared.PaymentGateway, bool) {
	gw, ok := r.gateways[name]
	return gw, ok
}

type fakePaymentRepo struct {
	records map[string]*payment.Record

	insertErr       error
	findErr         error
	markPaidErr     error
	markRefundedErr error

	inserted []*payment.Record
}

func newFakePaymentRepo(recs ...*payment.Record) *fakePaymentRepo {
	m := make(map[string]*payment.Record, len(recs))
	for _, rec := range recs {
		m[rec.OrderID] = rec
	}
	return &fakePaymentRepo{records: m}
}

func (r *fakePaymentRepo) Insert(_ context.Context, rec *payment.Record) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, rec)
	r.records[rec.OrderID] = rec
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(_ context.Context, orderID string) (*payment.Record, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	rec, ok := r.records[orderID]
	if !ok {
		return nil, notFoundErr()
	}
	return rec, nil
}

func (r *fakePaymentRepo) MarkPaid(_ context.Context, orderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	if r.markPaidErr != nil {
		return false, r.markPaidErr
	}
	rec, ok := r.records[orderID]
	if !ok || rec.Status != payment.StatusPending {
		return false, nil
	}
	rec.Status = payment.StatusPaid
	rec.GatewayPaymentID = &paymentID
	rec.GatewaySignature = &signature
	rec.PaidAt = &paidAt
	return true, nil
}

func (r *fakePaymentRepo) MarkRefunded(_ context.Context, orderID string, refundedAt time.Time) (bool, error) {
	if r.markRefundedErr != nil {
		return false, r.markRefundedErr
	}
	rec, ok := r.records[orderID]
	if !ok || rec.Status != payment.StatusPaid {
		return false, nil
	}
	rec.Status = payment.StatusRefunded
	rec.RefundedAt = &refundedAt
	return true, nil
}

type fakeCouponQueries struct {
	result *queries.CouponResult
	err    error

	gotCode   string
	gotAmount int64
	calls     int
}

func (q *fakeCouponQueries) Validate(_ context.Context, code string, amountPaise int64) (*queries.CouponResult, error) {
	q.calls++
	q.gotCode = code
	q.gotAmount = amountPaise
	if q.err != nil {
		return nil, q.err
	}
	if q.result != nil {
		return q.result, nil
	}
	return &queries.CouponResult{}, nil
}

type fakeBookingStore struct {
	bookings map[uuid.UUID]*shared.BookingSnapshot
	err      error
}

func newFakeBookingStore(snaps ...*shared.BookingSnapshot) *fakeBookingStore {
	m := make(map[uuid.UUID]*shared.BookingSnapshot, len(snaps))
	for _, s := range snaps {
		m[s.ID] = s
	}
	return &fakeBookingStore{bookings: m}
}

func (s *fakeBookingStore) FindScheduledTime(_ context.Context, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	snap, ok := s.bookings[bookingID]
	if !ok {
		return nil, notFoundErr()
	}
	return snap, nil
}
