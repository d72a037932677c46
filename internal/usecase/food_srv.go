package usecase

import (
	"context"
	"strings"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/storage"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FoodService interface {
	ListFoods(ctx context.Context) ([]response.FoodResponse, error)
	ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]response.FoodResponse, error)
	GetFood(ctx context.Context, id string) (*response.FoodResponse, error)
	CreateFood(ctx context.Context, actor Actor, req *request.CreateFoodRequest) (*response.FoodResponse, error)
	UpdateFood(ctx context.Context, actor Actor, id string, req *request.UpdateFoodRequest) (*response.FoodResponse, error)
	DeleteFood(ctx context.Context, actor Actor, id string) error
	AttachImages(ctx context.Context, actor Actor, id string, files []storage.ImageUpload) (*response.FoodResponse, error)
	DetachImage(ctx context.Context, actor Actor, id, imageID string) (*response.FoodResponse, error)
}

type foodService struct {
	repo   *repository.Repository
	images *imageManager
	log    *zap.Logger
}

func NewFoodService(repo *repository.Repository, host storage.ImageHost, log *zap.Logger) FoodService {
	log = log.With(zap.String("service", "food"))
	return &foodService{
		repo:   repo,
		images: newImageManager(host, log),
		log:    log,
	}
}

func (s *foodService) ListFoods(ctx context.Context) ([]response.FoodResponse, error) {
	foods, err := s.repo.Food.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal("failed to get foods", err)
	}

	restaurants := make(map[uuid.UUID]*entity.Restaurant)
	result := make([]response.FoodResponse, 0, len(foods))
	for _, food := range foods {
		restaurant, seen := restaurants[food.RestaurantID]
		if !seen {
			restaurant, err = s.repo.Restaurant.FindByID(ctx, food.RestaurantID)
			if err != nil {
				return nil, ErrInternal("failed to get restaurant", err)
			}
			restaurants[food.RestaurantID] = restaurant
		}
		result = append(result, response.FoodToResponse(food, restaurant))
	}

	return result, nil
}

func (s *foodService) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]response.FoodResponse, error) {
	id, err := parseID(restaurantID, "restaurant")
	if err != nil {
		return nil, err
	}

	foods, err := s.repo.Food.FindByRestaurantID(ctx, id)
	if err != nil {
		return nil, ErrInternal("failed to get foods", err)
	}

	result := make([]response.FoodResponse, 0, len(foods))
	for _, food := range foods {
		result = append(result, response.FoodToResponse(food, nil))
	}

	return result, nil
}

func (s *foodService) GetFood(ctx context.Context, id string) (*response.FoodResponse, error) {
	food, err := s.findFood(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, food.RestaurantID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}

	resp := response.FoodToResponse(food, restaurant)
	return &resp, nil
}

func (s *foodService) CreateFood(ctx context.Context, actor Actor, req *request.CreateFoodRequest) (*response.FoodResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create food validation failed", zap.Any("errors", errs))
		return nil, ErrValidation(errs)
	}

	// 2. Restaurant must exist and belong to the actor
	restaurantID, err := parseID(req.Restaurant, "restaurant")
	if err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant", err)
	}
	if restaurant == nil {
		return nil, ErrNotFound("Restaurant not found")
	}

	if err := authorizeOwner(actor, restaurant.OwnerID, "Not authorized to add food to this restaurant"); err != nil {
		return nil, err
	}

	// 3. Save food
	now := time.Now()
	food := &entity.Food{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(req.Name),
		Description:  valueOr(req.Description, ""),
		Price:        *req.Price,
		Category:     valueOr(req.Category, ""),
		IsAvailable:  req.IsAvailable == nil || *req.IsAvailable,
		Images:       []entity.Image{},
	}

	if err := s.repo.Food.Create(ctx, food); err != nil {
		return nil, ErrInternal("failed to create food", err)
	}

	s.log.Info("Food created",
		zap.String("food_id", food.ID.String()),
		zap.String("restaurant_id", restaurant.ID.String()),
	)

	resp := response.FoodToResponse(food, restaurant)
	return &resp, nil
}

func (s *foodService) UpdateFood(ctx context.Context, actor Actor, id string, req *request.UpdateFoodRequest) (*response.FoodResponse, error) {
	food, restaurant, err := s.findOwnedFood(ctx, actor, id, "Not authorized to update this food")
	if err != nil {
		return nil, err
	}

	if err := checkBody(req); err != nil {
		return nil, err
	}

	food.Name = pick(req.Name, food.Name)
	food.Description = pick(req.Description, food.Description)
	food.Price = pickFloat(req.Price, food.Price)
	food.Category = pick(req.Category, food.Category)
	if req.IsAvailable != nil {
		food.IsAvailable = *req.IsAvailable
	}
	food.UpdatedAt = time.Now()

	if err := s.repo.Food.Update(ctx, food); err != nil {
		return nil, ErrInternal("failed to update food", err)
	}

	s.log.Info("Food updated", zap.String("food_id", id))

	resp := response.FoodToResponse(food, restaurant)
	return &resp, nil
}

func (s *foodService) DeleteFood(ctx context.Context, actor Actor, id string) error {
	food, _, err := s.findOwnedFood(ctx, actor, id, "Not authorized to delete this food")
	if err != nil {
		return err
	}

	if err := s.images.destroyAll(ctx, food.Images); err != nil {
		return err
	}

	if err := s.repo.Food.Delete(ctx, food.ID); err != nil {
		return ErrInternal("failed to delete food", err)
	}

	s.log.Info("Food deleted",
		zap.String("food_id", id),
		zap.Int("images", len(food.Images)),
	)
	return nil
}

func (s *foodService) AttachImages(ctx context.Context, actor Actor, id string, files []storage.ImageUpload) (*response.FoodResponse, error) {
	food, restaurant, err := s.findOwnedFood(ctx, actor, id, "Not authorized to update this food")
	if err != nil {
		return nil, err
	}

	uploaded, err := s.images.uploadAll(ctx, "foods", files)
	if err != nil {
		return nil, err
	}

	food.Images = append(food.Images, uploaded...)
	food.UpdatedAt = time.Now()

	if err := s.repo.Food.Update(ctx, food); err != nil {
		return nil, ErrInternal("failed to save food images", err)
	}

	s.log.Info("Food images uploaded",
		zap.String("food_id", id),
		zap.Int("count", len(uploaded)),
	)

	resp := response.FoodToResponse(food, restaurant)
	return &resp, nil
}

func (s *foodService) DetachImage(ctx context.Context, actor Actor, id, imageID string) (*response.FoodResponse, error) {
	food, restaurant, err := s.findOwnedFood(ctx, actor, id, "Not authorized to update this food")
	if err != nil {
		return nil, err
	}

	remaining, err := s.images.detach(ctx, food.Images, imageID)
	if err != nil {
		return nil, err
	}

	food.Images = remaining
	food.UpdatedAt = time.Now()

	if err := s.repo.Food.Update(ctx, food); err != nil {
		return nil, ErrInternal("failed to save food images", err)
	}

	resp := response.FoodToResponse(food, restaurant)
	return &resp, nil
}

func (s *foodService) findFood(ctx context.Context, id string) (*entity.Food, error) {
	foodID, err := parseID(id, "food")
	if err != nil {
		return nil, err
	}

	food, err := s.repo.Food.FindByID(ctx, foodID)
	if err != nil {
		return nil, ErrInternal("failed to get food", err)
	}
	if food == nil {
		return nil, ErrNotFound("Food not found")
	}

	return food, nil
}

// findOwnedFood loads a food and checks the actor owns its restaurant.
func (s *foodService) findOwnedFood(ctx context.Context, actor Actor, id, denied string) (*entity.Food, *entity.Restaurant, error) {
	food, err := s.findFood(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, food.RestaurantID)
	if err != nil {
		return nil, nil, ErrInternal("failed to get restaurant", err)
	}
	if restaurant == nil {
		return nil, nil, ErrNotFound("Restaurant not found")
	}

	if err := authorizeOwner(actor, restaurant.OwnerID, denied); err != nil {
		s.log.Warn("Food access denied",
			zap.String("food_id", id),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, nil, err
	}

	return food, restaurant, nil
}
