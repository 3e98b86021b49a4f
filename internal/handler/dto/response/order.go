package response

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
)

type OrderResponse struct {
	OrderID       string `json:"orderId"`
	AmountPaise   int64  `json:"amountPaise"`
	Currency      string `json:"currency"`
	DiscountPaise int64  `json:"discountPaise,omitempty"`
	CouponCode    string `json:"couponCode,omitempty"`
	Free          bool   `json:"free,omitempty"`
}

func FromOrderResult(result *commands.OrderResult) *OrderResponse {
	return &OrderResponse{
		OrderID:       result.OrderID,
		AmountPaise:   result.AmountPaise,
		Currency:      result.Currency,
		DiscountPaise: result.DiscountPaise,
		CouponCode:    result.CouponCode,
		Free:          result.Free,
	}
}
