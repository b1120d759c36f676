package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payrelay/internal/models"
	"payrelay/internal/payway"
)

// PaymentCallbackHandler handles the gateway's asynchronous status
// pushbacks. The relay keeps no transaction state; a verified status is
// logged and acknowledged, nothing more.
type PaymentCallbackHandler struct {
	verifier *payway.Verifier
	logger   *zap.Logger
}

func NewPaymentCallbackHandler(verifier *payway.Verifier, logger *zap.Logger) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{verifier: verifier, logger: logger}
}

// Callback handles POST /api/payment-callback. The gateway accepts the
// ack envelope, not HTTP semantics, as the source of truth, so a
// rejected pushback still answers with the {"status":"1"} envelope.
func (h *PaymentCallbackHandler) Callback(c echo.Context) error {
	var event payway.CallbackEvent
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, models.AckFailure("malformed callback body"))
	}
	if !event.Complete() {
		return c.JSON(http.StatusBadRequest, models.AckFailure("missing required fields"))
	}

	if !h.verifier.Verify(event) {
		h.logger.Warn("rejected pushback",
			zap.String("tran_id", event.TranID),
			zap.String("merchant_id", event.MerchantID),
		)
		return c.JSON(http.StatusOK, models.AckFailure("signature verification failed"))
	}

	h.logger.Info("payment status pushback verified",
		zap.String("tran_id", event.TranID),
		zap.String("status", event.Status),
		zap.String("amount", event.Amount),
	)
	return c.JSON(http.StatusOK, models.AckSuccess())
}
