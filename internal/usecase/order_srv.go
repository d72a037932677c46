package usecase

import (
	"context"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, actor Actor, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error)
	ListMyOrders(ctx context.Context, actor Actor) ([]response.OrderResponse, error)
	ListRestaurantOrders(ctx context.Context, actor Actor) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	MarkDelivered(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error)
	CancelOrder(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, actor Actor, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, ErrValidation(errs)
	}
	if len(req.Items) == 0 {
		return nil, ErrBadRequest("No order items")
	}

	// 2. Capture the current price of every item
	items := make([]entity.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	var restaurantID uuid.UUID

	for i, reqItem := range req.Items {
		foodID, err := parseID(reqItem.Food, "food")
		if err != nil {
			return nil, err
		}

		food, err := s.repo.Food.FindByID(ctx, foodID)
		if err != nil {
			return nil, ErrInternal("failed to get food", err)
		}
		if food == nil {
			return nil, ErrNotFound("Food not found: " + reqItem.Food)
		}
		if !food.IsAvailable {
			return nil, ErrBadRequest(food.Name + " is not available")
		}

		// the first item decides the restaurant
		if i == 0 {
			restaurantID = food.RestaurantID
		}

		items = append(items, entity.OrderItem{
			FoodID:   food.ID,
			Quantity: reqItem.Quantity,
			Price:    food.Price,
		})
		total = total.Add(decimal.NewFromFloat(food.Price).Mul(decimal.NewFromInt(int64(reqItem.Quantity))))
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}
	if restaurant == nil {
		return nil, ErrNotFound("Restaurant not found")
	}

	// 3. Save order and items together
	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          actor.ID,
		RestaurantID:    restaurant.ID,
		Items:           items,
		TotalAmount:     total.InexactFloat64(),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	err = s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		return tx.Order.Create(ctx, order)
	})
	if err != nil {
		return nil, ErrInternal("failed to create order", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("total", total.StringFixed(2)),
	)

	resp := response.OrderToResponse(order, nil, nil, nil)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}

	allowed := order.UserID == actor.ID || actor.IsAdmin() ||
		(actor.Role == entity.RoleRestaurant && restaurant != nil && restaurant.OwnerID == actor.ID)
	if !allowed {
		s.log.Warn("Order access denied",
			zap.String("order_id", id),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, ErrUnauthorized("Not authorized to view this order")
	}

	user, err := s.repo.User.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, ErrInternal("failed to get customer", err)
	}

	foods := make(map[string]*entity.Food, len(order.Items))
	for _, item := range order.Items {
		food, err := s.repo.Food.FindByID(ctx, item.FoodID)
		if err != nil {
			return nil, ErrInternal("failed to get food", err)
		}
		// deleted foods keep only their id
		if food != nil {
			foods[item.FoodID.String()] = food
		}
	}

	resp := response.OrderToResponse(order,
		response.UserToSummary(user, true),
		response.RestaurantToSummary(restaurant, true),
		foods,
	)
	return &resp, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, actor Actor) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUserID(ctx, actor.ID)
	if err != nil {
		return nil, ErrInternal("failed to get orders", err)
	}

	restaurants := make(map[uuid.UUID]*entity.Restaurant)
	result := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		restaurant, seen := restaurants[order.RestaurantID]
		if !seen {
			restaurant, err = s.repo.Restaurant.FindByID(ctx, order.RestaurantID)
			if err != nil {
				return nil, ErrInternal("failed to get restaurant", err)
			}
			restaurants[order.RestaurantID] = restaurant
		}
		result = append(result, response.OrderToResponse(order, nil, response.RestaurantToSummary(restaurant, true), nil))
	}

	return result, nil
}

func (s *orderService) ListRestaurantOrders(ctx context.Context, actor Actor) ([]response.OrderResponse, error) {
	restaurant, err := s.repo.Restaurant.FindByOwnerID(ctx, actor.ID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}
	if restaurant == nil {
		return nil, ErrNotFound("Restaurant not found")
	}

	orders, err := s.repo.Order.FindByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		return nil, ErrInternal("failed to get orders", err)
	}

	customers := make(map[uuid.UUID]*entity.User)
	result := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		customer, seen := customers[order.UserID]
		if !seen {
			customer, err = s.repo.User.FindByID(ctx, order.UserID)
			if err != nil {
				return nil, ErrInternal("failed to get customer", err)
			}
			customers[order.UserID] = customer
		}
		result = append(result, response.OrderToResponse(order, response.UserToSummary(customer, false), nil, nil))
	}

	return result, nil
}

// UpdateStatus sets any non-cancelled status regardless of the current one.
func (s *orderService) UpdateStatus(ctx context.Context, actor Actor, id string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	order, err := s.findRestaurantOrder(ctx, actor, id, "Not authorized to update this order")
	if err != nil {
		return nil, err
	}

	if err := checkBody(req); err != nil {
		return nil, err
	}

	status := entity.OrderStatus(req.Status)
	if !status.IsSettable() {
		return nil, ErrBadRequest("Invalid status")
	}

	order.Status = status
	return s.saveStatus(ctx, order)
}

func (s *orderService) MarkDelivered(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error) {
	order, err := s.findRestaurantOrder(ctx, actor, id, "Not authorized to update this order")
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusDelivered
	order.PaymentStatus = entity.PaymentStatusCompleted
	return s.saveStatus(ctx, order)
}

func (s *orderService) CancelOrder(ctx context.Context, actor Actor, id string) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != actor.ID {
		return nil, ErrUnauthorized("Not authorized to cancel this order")
	}

	if !order.Status.IsCancellable() {
		return nil, ErrBadRequest("Order cannot be cancelled at this stage")
	}

	order.Status = entity.OrderStatusCancelled
	return s.saveStatus(ctx, order)
}

func (s *orderService) saveStatus(ctx context.Context, order *entity.Order) (*response.OrderResponse, error) {
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.UpdateStatus(ctx, order); err != nil {
		return nil, ErrInternal("failed to update order", err)
	}

	s.log.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
		zap.String("payment_status", string(order.PaymentStatus)),
	)

	resp := response.OrderToResponse(order, nil, nil, nil)
	return &resp, nil
}

func (s *orderService) findOrder(ctx context.Context, id string) (*entity.Order, error) {
	orderID, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrInternal("failed to get order", err)
	}
	if order == nil {
		return nil, ErrNotFound("Order not found")
	}

	return order, nil
}

// findRestaurantOrder loads an order the actor may manage as its restaurant owner.
func (s *orderService) findRestaurantOrder(ctx context.Context, actor Actor, id, denied string) (*entity.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}

	ownerID := uuid.Nil
	if restaurant != nil {
		ownerID = restaurant.OwnerID
	}

	if err := authorizeOwner(actor, ownerID, denied); err != nil {
		s.log.Warn("Order update denied",
			zap.String("order_id", id),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, err
	}

	return order, nil
}
