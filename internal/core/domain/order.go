package domain

import "time"

// OrderStatus represents the lifecycle state of a rental order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a rented tool line: quantity units for a number of days.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	Name        string  `json:"name" bson:"name"`
	PricePerDay float64 `json:"price_per_day" bson:"price_per_day"`
	Days        int     `json:"days" bson:"days"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// Subtotal returns the line total for this item.
func (i OrderItem) Subtotal() float64 {
	return i.PricePerDay * float64(i.Days) * float64(i.Quantity)
}

// Basket is the pre-checkout collection of items, persisted per customer.
type Basket struct {
	Items     []OrderItem `json:"items"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Total sums the subtotals of all items.
func (b Basket) Total() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.Subtotal()
	}
	return total
}

// DeliveryAddress is where the rented tools are dropped off.
type DeliveryAddress struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Phone   string `json:"phone" bson:"phone"`
}

// StatusHistoryEntry records a single status transition on an order.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderTracking is the customer-facing delivery progress view of an order.
type OrderTracking struct {
	OrderID string               `json:"order_id"`
	Status  OrderStatus          `json:"status"`
	History []StatusHistoryEntry `json:"history"`
}

// Order is the checkout aggregate.
type Order struct {
	ID            string               `json:"id" bson:"_id"`
	CustomerID    string               `json:"customer_id" bson:"customer_id"`
	Items         []OrderItem          `json:"items" bson:"items"`
	Total         float64              `json:"total" bson:"total"`
	Address       DeliveryAddress      `json:"address" bson:"address"`
	Status        OrderStatus          `json:"status" bson:"status"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
