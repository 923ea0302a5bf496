package handler

import (
	"log/slog"
	"net/http"

	"loomtrack/internal/delivery/http/middleware"
	"loomtrack/internal/delivery/http/response"
	"loomtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler bridges orders to the payment processor.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// CreatePaymentIntent mints a processor intent for an approved order and
// returns the client secret the browser needs to complete the charge.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var input *usecase.CreatePaymentIntentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "An order id is required")
	}

	output, err := h.uc.CreatePaymentIntent(c.Request().Context(), middleware.CurrentUser(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment intent created")
}
