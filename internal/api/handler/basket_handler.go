package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/core/ports"
)

// BasketHandler serves the guarded basket routes for the current customer.
type BasketHandler struct {
	service ports.BasketService
	session ports.SessionService
}

func NewBasketHandler(service ports.BasketService, session ports.SessionService) *BasketHandler {
	return &BasketHandler{service: service, session: session}
}

type basketItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Days      int    `json:"days"       validate:"required,min=1"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// Get handles GET /v1/basket.
//
// @Summary      Get the current basket
// @Tags         basket
// @Produce      json
// @Success      200  {object}  domain.Basket
// @Router       /v1/basket [get]
func (h *BasketHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	basket, err := h.service.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basket)
}

// AddItem handles POST /v1/basket/items.
//
// @Summary      Add an item to the basket
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        body  body      basketItemRequest  true  "Item to add"
// @Success      200   {object}  domain.Basket
// @Failure      404   {object}  map[string]string
// @Router       /v1/basket/items [post]
func (h *BasketHandler) AddItem(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	var req basketItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	basket, err := h.service.AddItem(c.Request().Context(), identity.ID, ports.BasketItemInput{
		ProductID: req.ProductID,
		Days:      req.Days,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basket)
}

// UpdateItem handles PUT /v1/basket/items/:product_id.
//
// @Summary      Update a basket line
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        product_id  path  string             true  "Product id"
// @Param        body        body  basketItemRequest  true  "New days/quantity"
// @Success      200  {object}  domain.Basket
// @Router       /v1/basket/items/{product_id} [put]
func (h *BasketHandler) UpdateItem(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	var req basketItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	req.ProductID = c.Param("product_id")
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	basket, err := h.service.UpdateItem(c.Request().Context(), identity.ID, ports.BasketItemInput{
		ProductID: req.ProductID,
		Days:      req.Days,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basket)
}

// RemoveItem handles DELETE /v1/basket/items/:product_id.
//
// @Summary      Remove a basket line
// @Tags         basket
// @Produce      json
// @Param        product_id  path  string  true  "Product id"
// @Success      200  {object}  domain.Basket
// @Router       /v1/basket/items/{product_id} [delete]
func (h *BasketHandler) RemoveItem(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	basket, err := h.service.RemoveItem(c.Request().Context(), identity.ID, c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basket)
}

// Clear handles DELETE /v1/basket.
//
// @Summary      Clear the basket
// @Tags         basket
// @Success      204
// @Router       /v1/basket [delete]
func (h *BasketHandler) Clear(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), identity.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
