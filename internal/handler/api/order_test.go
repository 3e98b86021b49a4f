//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/api"
	resdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/response"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
)

type stubOrderCommands struct {
	result *commands.OrderResult
	err    error

	gotParams commands.CreateOrderParams
}

func (s *stubOrderCommands) CreateOrder(_ context.Context, params commands.CreateOrderParams) (*commands.OrderResult, error) {
	s.gotParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newOrderRouter(stub *stubOrderCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/orders", api.NewOrderHandler(stub).CreateOrder)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderHandler(t *testing.T) {
	validBody := map[string]any{
		"session_type": "individual",
		"format":       "video",
		"gateway":      "razorpay",
	}

	t.Run("201 with the order payload", func(t *testing.T) {
		stub := &stubOrderCommands{result: &commands.OrderResult{
			OrderID:     "order_abc123",
			AmountPaise: 129900,
			Currency:    "INR",
		}}
		rec := postJSON(t, newOrderRouter(stub), "/api/orders", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp resdto.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order_abc123", resp.OrderID)
		assert.Equal(t, int64(129900), resp.AmountPaise)
		assert.Equal(t, "INR", resp.Currency)
	})

	t.Run("blank coupon code is dropped before the use case", func(t *testing.T) {
		stub := &stubOrderCommands{result: &commands.OrderResult{OrderID: "order_abc123"}}
		body := map[string]any{
			"session_type": "individual",
			"format":       "video",
			"gateway":      "razorpay",
			"coupon_code":  "   ",
		}
		rec := postJSON(t, newOrderRouter(stub), "/api/orders", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, stub.gotParams.CouponCode)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		stub := &stubOrderCommands{}
		rec := postJSON(t, newOrderRouter(stub), "/api/orders", map[string]any{"session_type": "individual"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 on unsupported gateway value", func(t *testing.T) {
		stub := &stubOrderCommands{}
		body := map[string]any{
			"session_type": "individual",
			"format":       "video",
			"gateway":      "stripe",
		}
		rec := postJSON(t, newOrderRouter(stub), "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("use case errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown offering", err: commands.ErrUnknownOffering, expectCode: http.StatusBadRequest},
			{name: "unknown gateway", err: commands.ErrUnknownGateway, expectCode: http.StatusBadRequest},
			{name: "coupon rejected", err: &commands.CouponRejectedError{Reason: "This coupon has expired"}, expectCode: http.StatusUnprocessableEntity},
			{name: "coupon check unavailable", err: commands.ErrCouponCheckUnavailable, expectCode: http.StatusServiceUnavailable},
			{name: "gateway unavailable", err: commands.ErrGatewayUnavailable, expectCode: http.StatusServiceUnavailable},
			{name: "unexpected failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stub := &stubOrderCommands{err: tc.err}
				rec := postJSON(t, newOrderRouter(stub), "/api/orders", validBody)
				assert.Equal(t, tc.expectCode, rec.Code)
			})
		}
	})

	t.Run("coupon rejection surfaces the reason", func(t *testing.T) {
		stub := &stubOrderCommands{err: &commands.CouponRejectedError{Reason: "This coupon has expired"}}
		rec := postJSON(t, newOrderRouter(stub), "/api/orders", validBody)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "This coupon has expired")
	})
}
