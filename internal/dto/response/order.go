package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type OrderItemResponse struct {
	FoodID   string       `json:"foodId"`
	Food     *FoodSummary `json:"food,omitempty"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
}

type OrderResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	User            *UserSummary         `json:"user,omitempty"`
	RestaurantID    string               `json:"restaurantId"`
	Restaurant      *RestaurantSummary   `json:"restaurant,omitempty"`
	Items           []OrderItemResponse  `json:"items"`
	TotalAmount     float64              `json:"totalAmount"`
	DeliveryAddress string               `json:"deliveryAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	Status          entity.OrderStatus   `json:"status"`
	PaymentStatus   entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// OrderToResponse converts an order. foods may be nil, in which case items
// carry only the food id.
func OrderToResponse(order *entity.Order, user *UserSummary, restaurant *RestaurantSummary, foods map[string]*entity.Food) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		foodID := item.FoodID.String()
		items = append(items, OrderItemResponse{
			FoodID:   foodID,
			Food:     FoodToSummary(foods[foodID], true),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		User:            user,
		RestaurantID:    order.RestaurantID.String(),
		Restaurant:      restaurant,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
