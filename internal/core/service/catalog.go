package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

type catalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

// NewCatalogService returns a CatalogService over the given repository.
func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) ports.CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// ListProducts returns all products, optionally filtered by category. An
// empty category means no filter.
func (s *catalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
