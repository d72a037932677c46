package request

type OrderItemRequest struct {
	Food     string `json:"food" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"dive"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
