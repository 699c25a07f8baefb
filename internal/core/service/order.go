package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
	"github.com/tool2u/rental-platform/pkg/ids"
)

type orderService struct {
	repo   ports.OrderRepository
	basket ports.BasketService
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewOrderService returns an OrderService over the given repository and
// basket service.
func NewOrderService(repo ports.OrderRepository, basket ports.BasketService, logger zerolog.Logger) ports.OrderService {
	return &orderService{
		repo:   repo,
		basket: basket,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  ids.New,
	}
}

// Checkout converts the customer's basket into a pending order and clears the
// basket. An empty basket is a business-rule failure, not a fault.
func (s *orderService) Checkout(ctx context.Context, in ports.CheckoutInput) (*domain.Order, error) {
	basket, err := s.basket.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, domain.ErrEmptyBasket
	}

	now := s.now()
	order := &domain.Order{
		ID:         s.newID(),
		CustomerID: in.CustomerID,
		Items:      basket.Items,
		Total:      basket.Total(),
		Address:    in.Address,
		Status:     domain.OrderPending,
		CreatedAt:  now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.OrderPending, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("customer_id", in.CustomerID).Msg("failed to create order")
		return nil, err
	}

	if err := s.basket.Clear(ctx, in.CustomerID); err != nil {
		// The order exists; a stale basket is an inconvenience, not a rollback.
		s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to clear basket after checkout")
	}

	s.logger.Info().Str("order_id", order.ID).Str("customer_id", in.CustomerID).Float64("total", order.Total).Msg("order created")
	return order, nil
}

// GetOrder returns an order, restricted to its owning customer.
func (s *orderService) GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// Track returns the delivery progress of an order, restricted to its owning
// customer.
func (s *orderService) Track(ctx context.Context, id, customerID string) (domain.OrderTracking, error) {
	order, err := s.GetOrder(ctx, id, customerID)
	if err != nil {
		return domain.OrderTracking{}, err
	}
	return domain.OrderTracking{
		OrderID: order.ID,
		Status:  order.Status,
		History: order.StatusHistory,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// AdvanceStatus moves an order through its lifecycle, enforcing the state
// machine. Used by the staff API only.
func (s *orderService) AdvanceStatus(ctx context.Context, id string, next domain.OrderStatus, notes string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	ts := s.now()
	if err := s.repo.AppendStatus(ctx, id, next, ts, notes); err != nil {
		return nil, fmt.Errorf("advance order status: %w", err)
	}

	order.Status = next
	order.StatusHistory = append(order.StatusHistory, domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: ts,
		Notes:     notes,
	})

	s.logger.Info().Str("order_id", id).Str("status", string(next)).Msg("order status advanced")
	return order, nil
}

func (s *orderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}
