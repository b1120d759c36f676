package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"payrelay/internal/config"
	"payrelay/internal/handler"
	"payrelay/internal/middleware"
	"payrelay/internal/payway"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (val *Validator) Validate(i interface{}) error {
	return val.v.Struct(i)
}

// Setup configures all routes for the Echo server.
func Setup(
	e *echo.Echo,
	cfg *config.Config,
	gateway *payway.Client,
	verifier *payway.Verifier,
	logger *zap.Logger,
) {
	e.Validator = NewValidator()

	// Global middleware
	e.Use(echomw.Recover())
	e.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	e.Use(middleware.RequestLogger(logger))

	// Handlers
	paymentHandler := handler.NewPaymentHandler(gateway, logger)
	callbackHandler := handler.NewPaymentCallbackHandler(verifier, logger)

	e.POST("/api/create-payment", paymentHandler.CreatePayment)
	// Registered from the shared constant so the route and the
	// pushback_url sent to the gateway stay in sync.
	e.POST(payway.CallbackPath, callbackHandler.Callback)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
