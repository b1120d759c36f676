package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payrelay/internal/models"
	"payrelay/internal/payway"
)

// PaymentHandler serves the UI-facing payment-initiation endpoint.
type PaymentHandler struct {
	gateway *payway.Client
	logger  *zap.Logger
}

func NewPaymentHandler(gateway *payway.Client, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, logger: logger}
}

// CreatePayment handles POST /api/create-payment.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req models.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "paymentOption must be one of card, khqr-qr and amount is required",
		})
	}

	pr, outcome, err := h.gateway.CreatePayment(
		c.Request().Context(),
		payway.Option(req.PaymentOption),
		req.Amount,
		req.Items,
	)
	if err != nil {
		switch {
		case errors.Is(err, payway.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "amount must be a non-negative number"})
		case errors.Is(err, payway.ErrInvalidItems):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "items could not be serialized"})
		case errors.Is(err, payway.ErrInvalidOption):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "unsupported payment option"})
		default:
			h.logger.Error("payment initiation failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "payment service is misconfigured"})
		}
	}

	switch outcome.Type {
	case payway.OutcomeFormRedirect:
		return c.JSON(http.StatusOK, models.PaymentResponse{
			Type:    "form_redirect",
			URL:     outcome.TargetURL,
			Payload: outcome.FormFields,
		})
	case payway.OutcomeInlineImage:
		return c.JSON(http.StatusOK, models.PaymentResponse{
			Type:    "khqr",
			Payload: map[string]string{"khqr_image": outcome.QRImage},
		})
	case payway.OutcomeRawMarkup:
		return c.JSON(http.StatusOK, models.PaymentResponse{
			Type: "html",
			Data: outcome.HTML,
		})
	default:
		h.logger.Warn("gateway failure",
			zap.String("tran_id", pr.TranID),
			zap.String("reason", outcome.Reason),
		)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{Message: outcome.Reason})
	}
}
