package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// IsSettable reports whether a restaurant may set s through a status
// update. Cancellation has its own path.
func (s OrderStatus) IsSettable() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	}
	return false
}

// IsCancellable reports whether the customer may still cancel.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// OrderItem keeps the unit price captured when the order was placed.
type OrderItem struct {
	FoodID   uuid.UUID `db:"food_id"`
	Quantity int       `db:"quantity"`
	Price    float64   `db:"price"`
}

type Order struct {
	Base
	UserID          uuid.UUID     `db:"user_id"`
	RestaurantID    uuid.UUID     `db:"restaurant_id"`
	Items           []OrderItem   `db:"-"`
	TotalAmount     float64       `db:"total_amount"`
	DeliveryAddress string        `db:"delivery_address"`
	PaymentMethod   string        `db:"payment_method"`
	Status          OrderStatus   `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
}
