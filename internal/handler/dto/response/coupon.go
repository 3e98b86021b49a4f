package response

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
)

type CouponValidationResponse struct {
	Valid         bool   `json:"valid"`
	DiscountPaise int64  `json:"discountPaise,omitempty"`
	Message       string `json:"message,omitempty"`
	CouponCode    string `json:"couponCode,omitempty"`
}

func FromCouponResult(result *queries.CouponResult) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:         result.Applicable,
		DiscountPaise: result.DiscountPaise,
		Message:       result.Message,
		CouponCode:    result.CouponCode,
	}
}
