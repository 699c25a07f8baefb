package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

const basketKeyPrefix = "basket:"

type basketService struct {
	kv      ports.KVStore
	catalog ports.CatalogRepository
	logger  zerolog.Logger
	now     func() time.Time
}

// NewBasketService returns a BasketService persisting baskets per customer in
// the durable KV store.
func NewBasketService(kv ports.KVStore, catalog ports.CatalogRepository, logger zerolog.Logger) ports.BasketService {
	return &basketService{
		kv:      kv,
		catalog: catalog,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func basketKey(customerID string) string {
	return basketKeyPrefix + customerID
}

func (s *basketService) Get(ctx context.Context, customerID string) (domain.Basket, error) {
	raw, ok, err := s.kv.Get(ctx, basketKey(customerID))
	if err != nil {
		return domain.Basket{}, fmt.Errorf("read basket: %w", err)
	}
	if !ok {
		return domain.Basket{}, nil
	}

	var basket domain.Basket
	if err := json.Unmarshal(raw, &basket); err != nil {
		return domain.Basket{}, fmt.Errorf("decode basket: %w", err)
	}
	return basket, nil
}

// AddItem adds a product line to the basket, merging quantities when the
// product is already present with the same rental length.
func (s *basketService) AddItem(ctx context.Context, customerID string, in ports.BasketItemInput) (domain.Basket, error) {
	product, err := s.catalog.FindByID(ctx, in.ProductID)
	if err != nil {
		return domain.Basket{}, err
	}

	basket, err := s.Get(ctx, customerID)
	if err != nil {
		return domain.Basket{}, err
	}

	merged := false
	for i, item := range basket.Items {
		if item.ProductID == in.ProductID && item.Days == in.Days {
			basket.Items[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		basket.Items = append(basket.Items, domain.OrderItem{
			ProductID:   product.ID,
			Name:        product.Name,
			PricePerDay: product.PricePerDay,
			Days:        in.Days,
			Quantity:    in.Quantity,
		})
	}

	return s.save(ctx, customerID, basket)
}

// UpdateItem replaces the days/quantity of an existing line.
func (s *basketService) UpdateItem(ctx context.Context, customerID string, in ports.BasketItemInput) (domain.Basket, error) {
	basket, err := s.Get(ctx, customerID)
	if err != nil {
		return domain.Basket{}, err
	}

	for i, item := range basket.Items {
		if item.ProductID == in.ProductID {
			basket.Items[i].Days = in.Days
			basket.Items[i].Quantity = in.Quantity
			return s.save(ctx, customerID, basket)
		}
	}
	return domain.Basket{}, domain.ErrProductNotFound
}

func (s *basketService) RemoveItem(ctx context.Context, customerID, productID string) (domain.Basket, error) {
	basket, err := s.Get(ctx, customerID)
	if err != nil {
		return domain.Basket{}, err
	}

	kept := basket.Items[:0]
	for _, item := range basket.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	basket.Items = kept

	return s.save(ctx, customerID, basket)
}

func (s *basketService) Clear(ctx context.Context, customerID string) error {
	if err := s.kv.Delete(ctx, basketKey(customerID)); err != nil {
		return fmt.Errorf("clear basket: %w", err)
	}
	return nil
}

func (s *basketService) save(ctx context.Context, customerID string, basket domain.Basket) (domain.Basket, error) {
	basket.UpdatedAt = s.now()
	raw, err := json.Marshal(basket)
	if err != nil {
		return domain.Basket{}, fmt.Errorf("encode basket: %w", err)
	}
	if err := s.kv.Set(ctx, basketKey(customerID), raw); err != nil {
		return domain.Basket{}, fmt.Errorf("persist basket: %w", err)
	}
	return basket, nil
}
