package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/api/metrics"
	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
	"github.com/tool2u/rental-platform/pkg/ids"
)

// OrderHandler serves checkout, order listing, and tracking for the current
// customer.
type OrderHandler struct {
	service ports.OrderService
	session ports.SessionService
}

func NewOrderHandler(service ports.OrderService, session ports.SessionService) *OrderHandler {
	return &OrderHandler{service: service, session: session}
}

type checkoutRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Phone   string `json:"phone"    validate:"required"`
}

// Checkout handles POST /v1/orders, converting the basket into an order.
//
// @Summary      Checkout the basket
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Delivery address"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		CustomerID: identity.ID,
		Address: domain.DeliveryAddress{
			Address: req.Address,
			City:    req.City,
			ZipCode: req.ZipCode,
			Phone:   req.Phone,
		},
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /v1/orders.
//
// @Summary      List the customer's orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  domain.Order
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /v1/orders/:id, restricted to the owning customer.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	id, err := ids.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name any order; skip the repository round trip.
		return domain.ErrOrderNotFound
	}

	order, err := h.service.GetOrder(c.Request().Context(), id, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Track handles GET /v1/orders/:id/track.
//
// @Summary      Track an order's delivery progress
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.OrderTracking
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id}/track [get]
func (h *OrderHandler) Track(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	id, err := ids.Parse(c.Param("id"))
	if err != nil {
		return domain.ErrOrderNotFound
	}

	tracking, err := h.service.Track(c.Request().Context(), id, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tracking)
}
