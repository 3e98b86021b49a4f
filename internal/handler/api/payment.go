package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/request"
	resdto "github.com/noumaankhatib/mindfulqalb-payments/internal/handler/dto/response"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/httperr"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
)

type PaymentHandler struct {
	verifyUseCase  commands.VerifyCommands
	refundUseCase  commands.RefundCommands
	paymentQueries queries.PaymentQueries
}

func NewPaymentHandler(
	verifyUseCase commands.VerifyCommands,
	refundUseCase commands.RefundCommands,
	paymentQueries queries.PaymentQueries,
) *PaymentHandler {
	return &PaymentHandler{
		verifyUseCase:  verifyUseCase,
		refundUseCase:  refundUseCase,
		paymentQueries: paymentQueries,
	}
}

// @Summary Verify payment
// @Description Verify a gateway payment callback signature and mark the payment paid
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Verification request"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.verifyUseCase.VerifyPayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		case errors.Is(err, commands.ErrPaymentStateConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already settled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.VerifyResponse{Verified: result.Verified})
}

// @Summary Refund payment
// @Description Compute the refund under the cancellation policy and execute it at the gateway
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Gateway order ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/{orderId}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	orderID := c.Param("orderId")
	if orderID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing order id"), "Missing order ID", nil)
		return
	}

	result, err := h.refundUseCase.RefundPayment(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrAlreadyRefunded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already refunded", nil)
		case errors.Is(err, commands.ErrPaymentNotRefundable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment is not refundable", nil)
		case errors.Is(err, commands.ErrNoRefundDue):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No refund amount due", nil)
		case errors.Is(err, commands.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Payment gateway is unavailable, please try again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

// @Summary Get payment
// @Description Get the payment record for a gateway order
// @Tags payments
// @Produce json
// @Param orderId path string true "Gateway order ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /payments/{orderId} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	orderID := c.Param("orderId")

	view, err := h.paymentQueries.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
