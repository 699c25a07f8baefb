package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/api/metrics"
	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
	"github.com/tool2u/rental-platform/pkg/ids"
)

// StaffHandler serves the staff portal API: order oversight and delivery
// status updates. Routes are bearer-token authenticated and role gated.
type StaffHandler struct {
	service ports.OrderService
}

func NewStaffHandler(service ports.OrderService) *StaffHandler {
	return &StaffHandler{service: service}
}

type advanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed out_for_delivery delivered cancelled"`
	Notes  string `json:"notes,omitempty"`
}

// ListOrders handles GET /v1/staff/orders (owner, admin).
//
// @Summary      List all orders
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Failure      403  {object}  map[string]string
// @Router       /v1/staff/orders [get]
func (h *StaffHandler) ListOrders(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// AdvanceStatus handles POST /v1/staff/orders/:id/status (driver, owner, admin).
//
// @Summary      Advance an order's delivery status
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Order id"
// @Param        body  body      advanceStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff/orders/{id}/status [post]
func (h *StaffHandler) AdvanceStatus(c echo.Context) error {
	var req advanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	id, err := ids.Parse(c.Param("id"))
	if err != nil {
		return domain.ErrOrderNotFound
	}

	order, err := h.service.AdvanceStatus(c.Request().Context(), id, domain.OrderStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}

	metrics.OrderStatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, order)
}
