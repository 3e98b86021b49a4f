package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
)

type VerifyResponse struct {
	Verified bool `json:"verified"`
}

type RefundResponse struct {
	OrderID     string `json:"orderId"`
	RefundPaise int64  `json:"refundPaise"`
}

type PaymentResponse struct {
	OrderID       string     `json:"orderId"`
	Gateway       string     `json:"gateway"`
	AmountPaise   int64      `json:"amountPaise"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	CouponCode    *string    `json:"couponCode,omitempty"`
	DiscountPaise int64      `json:"discountPaise,omitempty"`
	BookingID     *uuid.UUID `json:"bookingId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	RefundedAt    *time.Time `json:"refundedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromRefundResult(result *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		OrderID:     result.OrderID,
		RefundPaise: result.AmountPaise,
	}
}

func FromPaymentView(view *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		OrderID:       view.OrderID,
		Gateway:       view.Gateway,
		AmountPaise:   view.AmountPaise,
		Currency:      view.Currency,
		Status:        view.Status,
		CouponCode:    view.CouponCode,
		DiscountPaise: view.DiscountPaise,
		BookingID:     view.BookingID,
		PaidAt:        view.PaidAt,
		RefundedAt:    view.RefundedAt,
		CreatedAt:     view.CreatedAt,
	}
}
