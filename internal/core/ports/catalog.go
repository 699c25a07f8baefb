package ports

import (
	"context"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// CatalogRepository defines the interface for product persistence.
type CatalogRepository interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CatalogService exposes catalog browsing to the API layer.
type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
