package request

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
	// A zero amount is a legal input (free offerings), so no required tag:
	// gin's required validator rejects the zero value.
	AmountPaise int64 `json:"amount_paise" binding:"gte=0"`
}
