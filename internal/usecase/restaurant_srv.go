package usecase

import (
	"context"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/storage"

	"go.uber.org/zap"
)

type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]response.RestaurantResponse, error)
	GetRestaurant(ctx context.Context, id string) (*response.RestaurantDetailResponse, error)
	UpdateRestaurant(ctx context.Context, actor Actor, id string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error)
	AttachImages(ctx context.Context, actor Actor, id string, files []storage.ImageUpload) (*response.RestaurantResponse, error)
	DetachImage(ctx context.Context, actor Actor, id, imageID string) (*response.RestaurantResponse, error)
}

type restaurantService struct {
	repo   *repository.Repository
	images *imageManager
	log    *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, host storage.ImageHost, log *zap.Logger) RestaurantService {
	log = log.With(zap.String("service", "restaurant"))
	return &restaurantService{
		repo:   repo,
		images: newImageManager(host, log),
		log:    log,
	}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]response.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal("failed to get restaurants", err)
	}

	owners := make(map[string]*entity.User)
	result := make([]response.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		key := restaurant.OwnerID.String()
		owner, seen := owners[key]
		if !seen {
			owner, err = s.repo.User.FindByID(ctx, restaurant.OwnerID)
			if err != nil {
				return nil, ErrInternal("failed to get restaurant owner", err)
			}
			owners[key] = owner
		}
		result = append(result, response.RestaurantToResponse(restaurant, owner))
	}

	return result, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id string) (*response.RestaurantDetailResponse, error) {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.User.FindByID(ctx, restaurant.OwnerID)
	if err != nil {
		return nil, ErrInternal("failed to get restaurant owner", err)
	}

	foods, err := s.repo.Food.FindByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		return nil, ErrInternal("failed to get foods", err)
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		return nil, ErrInternal("failed to get reviews", err)
	}

	detail := &response.RestaurantDetailResponse{
		RestaurantResponse: response.RestaurantToResponse(restaurant, owner),
		Foods:              make([]response.FoodResponse, 0, len(foods)),
		Reviews:            make([]response.ReviewResponse, 0, len(reviews)),
	}

	for _, food := range foods {
		detail.Foods = append(detail.Foods, response.FoodToResponse(food, nil))
	}

	sum := 0
	for _, review := range reviews {
		reviewer, err := s.repo.User.FindByID(ctx, review.UserID)
		if err != nil {
			return nil, ErrInternal("failed to get reviewer", err)
		}
		detail.Reviews = append(detail.Reviews, response.ReviewToResponse(review, reviewer, nil, nil))
		sum += review.Rating
	}
	if len(reviews) > 0 {
		detail.AverageRating = float64(sum) / float64(len(reviews))
	}

	return detail, nil
}

// UpdateRestaurant checks ownership before looking at the body. A nil req
// stands for a body that could not be decoded.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, actor Actor, id string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error) {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(actor, restaurant.OwnerID, "Not authorized to update this restaurant"); err != nil {
		s.log.Warn("Restaurant update denied",
			zap.String("restaurant_id", id),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, err
	}

	if err := checkBody(req); err != nil {
		return nil, err
	}

	restaurant.Name = pick(req.Name, restaurant.Name)
	restaurant.Description = pick(req.Description, restaurant.Description)
	restaurant.Location = pick(req.Location, restaurant.Location)
	restaurant.CuisineType = pick(req.CuisineType, restaurant.CuisineType)
	restaurant.OpeningHours = pick(req.OpeningHours, restaurant.OpeningHours)
	restaurant.ContactNumber = pick(req.ContactNumber, restaurant.ContactNumber)
	restaurant.UpdatedAt = time.Now()

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		return nil, ErrInternal("failed to update restaurant", err)
	}

	s.log.Info("Restaurant updated", zap.String("restaurant_id", id))

	resp := response.RestaurantToResponse(restaurant, nil)
	return &resp, nil
}

func (s *restaurantService) AttachImages(ctx context.Context, actor Actor, id string, files []storage.ImageUpload) (*response.RestaurantResponse, error) {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(actor, restaurant.OwnerID, "Not authorized to update this restaurant"); err != nil {
		return nil, err
	}

	uploaded, err := s.images.uploadAll(ctx, "restaurants", files)
	if err != nil {
		return nil, err
	}

	restaurant.Images = append(restaurant.Images, uploaded...)
	restaurant.UpdatedAt = time.Now()

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		return nil, ErrInternal("failed to save restaurant images", err)
	}

	s.log.Info("Restaurant images uploaded",
		zap.String("restaurant_id", id),
		zap.Int("count", len(uploaded)),
	)

	resp := response.RestaurantToResponse(restaurant, nil)
	return &resp, nil
}

func (s *restaurantService) DetachImage(ctx context.Context, actor Actor, id, imageID string) (*response.RestaurantResponse, error) {
	restaurant, err := s.findRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(actor, restaurant.OwnerID, "Not authorized to update this restaurant"); err != nil {
		return nil, err
	}

	remaining, err := s.images.detach(ctx, restaurant.Images, imageID)
	if err != nil {
		return nil, err
	}

	restaurant.Images = remaining
	restaurant.UpdatedAt = time.Now()

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		return nil, ErrInternal("failed to save restaurant images", err)
	}

	resp := response.RestaurantToResponse(restaurant, nil)
	return &resp, nil
}

func (s *restaurantService) findRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurantID, err := parseID(id, "restaurant")
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

	return restaurant, nil
}
