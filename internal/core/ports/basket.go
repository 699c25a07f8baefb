package ports

import (
	"context"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// BasketItemInput identifies a product line to add or update.
type BasketItemInput struct {
	ProductID string
	Days      int
	Quantity  int
}

// BasketService manages the per-customer pre-checkout basket.
type BasketService interface {
	Get(ctx context.Context, customerID string) (domain.Basket, error)
	AddItem(ctx context.Context, customerID string, in BasketItemInput) (domain.Basket, error)
	UpdateItem(ctx context.Context, customerID string, in BasketItemInput) (domain.Basket, error)
	RemoveItem(ctx context.Context, customerID, productID string) (domain.Basket, error)
	Clear(ctx context.Context, customerID string) error
}
