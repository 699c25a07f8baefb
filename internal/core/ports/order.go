package ports

import (
	"context"
	"time"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	AppendStatus(ctx context.Context, id string, status domain.OrderStatus, ts time.Time, notes string) error
}

// CheckoutInput carries the checkout form fields.
type CheckoutInput struct {
	CustomerID string
	Address    domain.DeliveryAddress
}

// OrderService exposes checkout, tracking, and the staff order operations.
type OrderService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	Track(ctx context.Context, id, customerID string) (domain.OrderTracking, error)
	AdvanceStatus(ctx context.Context, id string, next domain.OrderStatus, notes string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
