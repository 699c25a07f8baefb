package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
	"github.com/tool2u/rental-platform/internal/infrastructure/kv/memory"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *stubOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) AppendStatus(_ context.Context, id string, status domain.OrderStatus, ts time.Time, notes string) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, domain.StatusHistoryEntry{Status: status, Timestamp: ts, Notes: notes})
	return nil
}

func newTestOrders(t *testing.T) (ports.OrderService, ports.BasketService, *stubOrderRepo) {
	t.Helper()
	catalog := &stubCatalogRepo{products: map[string]domain.Product{
		"drill": {ID: "drill", Name: "Cordless Drill", Category: "power-tools", PricePerDay: 15, Available: true},
	}}
	basket := NewBasketService(memory.NewStore(), catalog, zerolog.Nop())
	repo := newStubOrderRepo()
	return NewOrderService(repo, basket, zerolog.Nop()), basket, repo
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	orders, basket, _ := newTestOrders(t)

	_, err := basket.AddItem(ctx, "cust1", ports.BasketItemInput{ProductID: "drill", Days: 3, Quantity: 2})
	require.NoError(t, err)

	order, err := orders.Checkout(ctx, ports.CheckoutInput{
		CustomerID: "cust1",
		Address:    domain.DeliveryAddress{Address: "1 Soi 5", City: "Bangkok", ZipCode: "10110", Phone: "+66111111111"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 90.0, order.Total)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, domain.OrderPending, order.StatusHistory[0].Status)

	// Checkout empties the basket.
	left, err := basket.Get(ctx, "cust1")
	require.NoError(t, err)
	assert.Empty(t, left.Items)
}

func TestOrderService_Checkout_EmptyBasket(t *testing.T) {
	orders, _, _ := newTestOrders(t)
	_, err := orders.Checkout(context.Background(), ports.CheckoutInput{CustomerID: "cust1"})
	assert.ErrorIs(t, err, domain.ErrEmptyBasket)
}

func TestOrderService_GetOrder_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	orders, basket, _ := newTestOrders(t)

	_, err := basket.AddItem(ctx, "cust1", ports.BasketItemInput{ProductID: "drill", Days: 1, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Checkout(ctx, ports.CheckoutInput{CustomerID: "cust1"})
	require.NoError(t, err)

	got, err := orders.GetOrder(ctx, order.ID, "cust1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = orders.GetOrder(ctx, order.ID, "cust2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = orders.GetOrder(ctx, "nope", "cust1")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()
	orders, basket, repo := newTestOrders(t)

	_, err := basket.AddItem(ctx, "cust1", ports.BasketItemInput{ProductID: "drill", Days: 1, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Checkout(ctx, ports.CheckoutInput{CustomerID: "cust1"})
	require.NoError(t, err)

	updated, err := orders.AdvanceStatus(ctx, order.ID, domain.OrderConfirmed, "payment ok")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, updated.Status)
	assert.Len(t, updated.StatusHistory, 2)

	// Skipping a step is rejected and nothing is persisted.
	_, err = orders.AdvanceStatus(ctx, order.ID, domain.OrderDelivered, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.OrderConfirmed, repo.orders[order.ID].Status)
}

func TestOrderService_Track(t *testing.T) {
	ctx := context.Background()
	orders, basket, _ := newTestOrders(t)

	_, err := basket.AddItem(ctx, "cust1", ports.BasketItemInput{ProductID: "drill", Days: 1, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Checkout(ctx, ports.CheckoutInput{CustomerID: "cust1"})
	require.NoError(t, err)
	_, err = orders.AdvanceStatus(ctx, order.ID, domain.OrderConfirmed, "")
	require.NoError(t, err)

	tracking, err := orders.Track(ctx, order.ID, "cust1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, tracking.OrderID)
	assert.Equal(t, domain.OrderConfirmed, tracking.Status)
	require.Len(t, tracking.History, 2)
	assert.Equal(t, domain.OrderPending, tracking.History[0].Status)
	assert.Equal(t, domain.OrderConfirmed, tracking.History[1].Status)

	_, err = orders.Track(ctx, order.ID, "cust2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderStatus_Transitions(t *testing.T) {
	assert.True(t, domain.OrderPending.CanTransitionTo(domain.OrderConfirmed))
	assert.True(t, domain.OrderPending.CanTransitionTo(domain.OrderCancelled))
	assert.True(t, domain.OrderConfirmed.CanTransitionTo(domain.OrderOutForDelivery))
	assert.True(t, domain.OrderOutForDelivery.CanTransitionTo(domain.OrderDelivered))
	assert.False(t, domain.OrderDelivered.CanTransitionTo(domain.OrderCancelled))
	assert.False(t, domain.OrderOutForDelivery.CanTransitionTo(domain.OrderCancelled))
	assert.False(t, domain.OrderCancelled.CanTransitionTo(domain.OrderConfirmed))
}
