//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/api"
	resdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/response"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
)

type stubVerifyCommands struct {
	result *commands.VerifyResult
	err    error
}

func (s *stubVerifyCommands) VerifyPayment(context.Context, string, string, string) (*commands.VerifyResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubRefundCommands struct {
	result *commands.RefundResult
	err    error
}

func (s *stubRefundCommands) RefundPayment(context.Context, string) (*commands.RefundResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubPaymentQueries struct {
	view *queries.PaymentView
	err  error
}

func (s *stubPaymentQueries) GetByOrderID(context.Context, string) (*queries.PaymentView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func newPaymentRouter(verify *stubVerifyCommands, refund *stubRefundCommands, q *stubPaymentQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := api.NewPaymentHandler(verify, refund, q)
	engine.POST("/api/payments/verify", h.VerifyPayment)
	engine.POST("/api/payments/:orderId/refund", h.RefundPayment)
	engine.GET("/api/payments/:orderId", h.GetPayment)
	return engine
}

func TestVerifyPaymentHandler(t *testing.T) {
	validBody := map[string]any{
		"order_id":   "order_abc123",
		"payment_id": "pay_def456",
		"signature":  "deadbeef",
	}

	t.Run("200 with the verification outcome", func(t *testing.T) {
		engine := newPaymentRouter(&stubVerifyCommands{result: &commands.VerifyResult{Verified: true}}, &stubRefundCommands{}, &stubPaymentQueries{})
		rec := postJSON(t, engine, "/api/payments/verify", validBody)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.VerifyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Verified)
	})

	t.Run("failed verification is still a 200", func(t *testing.T) {
		engine := newPaymentRouter(&stubVerifyCommands{result: &commands.VerifyResult{Verified: false}}, &stubRefundCommands{}, &stubPaymentQueries{})
		rec := postJSON(t, engine, "/api/payments/verify", validBody)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.VerifyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Verified)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		engine := newPaymentRouter(&stubVerifyCommands{}, &stubRefundCommands{}, &stubPaymentQueries{})
		rec := postJSON(t, engine, "/api/payments/verify", map[string]any{"order_id": "order_abc123"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404 and 409 outcomes", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not found", err: commands.ErrPaymentNotFound, expectCode: http.StatusNotFound},
			{name: "state conflict", err: commands.ErrPaymentStateConflict, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				engine := newPaymentRouter(&stubVerifyCommands{err: tc.err}, &stubRefundCommands{}, &stubPaymentQueries{})
				rec := postJSON(t, engine, "/api/payments/verify", validBody)
				assert.Equal(t, tc.expectCode, rec.Code)
			})
		}
	})
}

func TestRefundPaymentHandler(t *testing.T) {
	t.Run("200 with the refund amount", func(t *testing.T) {
		engine := newPaymentRouter(&stubVerifyCommands{}, &stubRefundCommands{result: &commands.RefundResult{
			OrderID:     "order_abc123",
			AmountPaise: 64950,
		}}, &stubPaymentQueries{})

		req := httptest.NewRequest(http.MethodPost, "/api/payments/order_abc123/refund", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.RefundResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order_abc123", resp.OrderID)
		assert.Equal(t, int64(64950), resp.RefundPaise)
	})

	t.Run("use case errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "payment not found", err: commands.ErrPaymentNotFound, expectCode: http.StatusNotFound},
			{name: "booking not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
			{name: "already refunded", err: commands.ErrAlreadyRefunded, expectCode: http.StatusConflict},
			{name: "not refundable", err: commands.ErrPaymentNotRefundable, expectCode: http.StatusConflict},
			{name: "no refund due", err: commands.ErrNoRefundDue, expectCode: http.StatusUnprocessableEntity},
			{name: "gateway unavailable", err: commands.ErrGatewayUnavailable, expectCode: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				engine := newPaymentRouter(&stubVerifyCommands{}, &stubRefundCommands{err: tc.err}, &stubPaymentQueries{})
				req := httptest.NewRequest(http.MethodPost, "/api/payments/order_abc123/refund", nil)
				rec := httptest.NewRecorder()
				engine.ServeHTTP(rec, req)
				assert.Equal(t, tc.expectCode, rec.Code)
			})
		}
	})
}

func TestGetPaymentHandler(t *testing.T) {
	t.Run("200 with the payment record", func(t *testing.T) {
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		engine := newPaymentRouter(&stubVerifyCommands{}, &stubRefundCommands{}, &stubPaymentQueries{view: &queries.PaymentView{
			OrderID:     "order_abc123",
			Gateway:     "razorpay",
			AmountPaise: 129900,
			Currency:    "INR",
			Status:      "paid",
			CreatedAt:   created,
		}})

		req := httptest.NewRequest(http.MethodGet, "/api/payments/order_abc123", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order_abc123", resp.OrderID)
		assert.Equal(t, "paid", resp.Status)
	})

	t.Run("404 for unknown order", func(t *testing.T) {
		engine := newPaymentRouter(&stubVerifyCommands{}, &stubRefundCommands{}, &stubPaymentQueries{err: queries.ErrPaymentNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/payments/order_missing", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
