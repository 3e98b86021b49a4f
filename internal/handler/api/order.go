package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/request"
	resdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/response"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/httperr"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
)

type OrderHandler struct {
	orderUseCase commands.OrderCommands
}

func NewOrderHandler(orderUseCase commands.OrderCommands) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Create order
// @Description Create a payment order for a therapy session, optionally applying a coupon
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.CreateOrderParams{
		SessionType: req.SessionType,
		Format:      req.Format,
		Gateway:     req.Gateway,
		CouponCode:  req.GetCouponCode(),
	}

	result, err := h.orderUseCase.CreateOrder(c.Request.Context(), params)
	if err != nil {
		var couponErr *commands.CouponRejectedError
		switch {
		case errors.Is(err, commands.ErrUnknownOffering):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown session type or format", nil)
		case errors.Is(err, commands.ErrUnknownGateway):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment gateway", nil)
		case errors.As(err, &couponErr):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, couponErr.Reason, nil)
		case errors.Is(err, commands.ErrCouponCheckUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Could not validate coupon right now, please retry or remove the coupon", nil)
		case errors.Is(err, commands.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Payment gateway is unavailable, please try again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderResult(result))
}
