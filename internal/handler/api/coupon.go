package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/request"
	resdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/response"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/httperr"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponQueries: couponQueries,
	}
}

// @Summary Validate coupon
// @Description Check a coupon code against an order amount and report the discount
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.couponQueries.Validate(c.Request.Context(), req.Code, req.AmountPaise)
	if err != nil {
		// An unreachable store must surface as retryable, not as "invalid
		// coupon".
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Could not validate coupon right now, please try again", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponResult(result))
}
