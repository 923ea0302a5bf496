package handler

import (
	"log/slog"
	"net/http"

	"loomtrack/internal/delivery/http/middleware"
	"loomtrack/internal/delivery/http/response"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// PlaceOrder creates a pending order, reserving stock atomically.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Product id and a quantity of at least 1 are required")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), middleware.CurrentUser(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// GetOrder returns a single order with its tracking history.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), middleware.CurrentUser(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved")
}

// MyOrders returns the caller's own orders.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	orders, err := h.uc.MyOrders(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// PendingOrders returns pending orders against the caller's products.
func (h *OrderHandler) PendingOrders(c echo.Context) error {
	orders, err := h.uc.PendingForManager(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// ApprovedOrders returns approved orders against the caller's products.
func (h *OrderHandler) ApprovedOrders(c echo.Context) error {
	orders, err := h.uc.ApprovedForManager(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// AllOrders returns every order for the admin dashboard.
func (h *OrderHandler) AllOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{
		Status: c.QueryParam("status"),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}

	orders, err := h.uc.AllOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// ApproveOrder transitions a pending order to approved.
func (h *OrderHandler) ApproveOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.ApproveOrder(c.Request().Context(), middleware.CurrentUser(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order approved")
}

// RejectOrder transitions a pending order to rejected and releases stock.
func (h *OrderHandler) RejectOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.RejectOrder(c.Request().Context(), middleware.CurrentUser(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order rejected")
}

// CancelOrder lets the owning buyer withdraw a pending order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), middleware.CurrentUser(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}

// UpdateTracking appends a progress step to the order's history without
// changing the canonical status.
func (h *OrderHandler) UpdateTracking(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *usecase.AppendTrackingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A tracking status label is required")
	}

	order, err := h.uc.AppendTracking(c.Request().Context(), middleware.CurrentUser(c), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Tracking updated")
}

// MarkPaid records a confirmed payment on an approved order.
func (h *OrderHandler) MarkPaid(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *usecase.MarkPaidInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A transaction id is required")
	}

	order, err := h.uc.MarkPaid(c.Request().Context(), middleware.CurrentUser(c), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order marked as paid")
}
