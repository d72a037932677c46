package usecase

import (
	"context"
	"errors"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error)
	ListByFood(ctx context.Context, foodID string) ([]response.ReviewResponse, error)
	ListByUser(ctx context.Context, actor Actor) ([]response.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor Actor, id string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor Actor, id string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, ErrValidation(errs)
	}

	hasRestaurant := req.Restaurant != nil && *req.Restaurant != ""
	hasFood := req.Food != nil && *req.Food != ""
	if hasRestaurant == hasFood {
		return nil, ErrBadRequest("Review must target either a restaurant or a food")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:  actor.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	var (
		restaurant *entity.Restaurant
		food       *entity.Food
		existing   *entity.Review
	)

	// Target must exist and not be reviewed by this user yet
	if hasRestaurant {
		restaurantID, err := parseID(*req.Restaurant, "restaurant")
		if err != nil {
			return nil, err
		}
		restaurant, err = s.repo.Restaurant.FindByID(ctx, restaurantID)
		if err != nil {
			return nil, ErrInternal("failed to get restaurant", err)
		}
		if restaurant == nil {
			return nil, ErrNotFound("Restaurant not found")
		}
		existing, err = s.repo.Review.FindByUserAndRestaurant(ctx, actor.ID, restaurantID)
		if err != nil {
			return nil, ErrInternal("failed to check existing review", err)
		}
		review.RestaurantID = &restaurantID
	} else {
		foodID, err := parseID(*req.Food, "food")
		if err != nil {
			return nil, err
		}
		food, err = s.repo.Food.FindByID(ctx, foodID)
		if err != nil {
			return nil, ErrInternal("failed to get food", err)
		}
		if food == nil {
			return nil, ErrNotFound("Food not found")
		}
		existing, err = s.repo.Review.FindByUserAndFood(ctx, actor.ID, foodID)
		if err != nil {
			return nil, ErrInternal("failed to check existing review", err)
		}
		review.FoodID = &foodID
	}

	if existing != nil {
		return nil, ErrConflict("You have already reviewed this")
	}

	// Save review
	err := s.repo.Review.Create(ctx, review)
	if errors.Is(err, repository.ErrDuplicateReview) {
		return nil, ErrConflict("You have already reviewed this")
	}
	if err != nil {
		return nil, ErrInternal("failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, nil, restaurant, food)
	return &resp, nil
}

func (s *reviewService) ListByRestaurant(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error) {
	id, err := parseID(restaurantID, "restaurant")
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, id)
	if err != nil {
		return nil, ErrInternal("failed to get reviews", err)
	}

	return s.withReviewers(ctx, reviews)
}

func (s *reviewService) ListByFood(ctx context.Context, foodID string) ([]response.ReviewResponse, error) {
	id, err := parseID(foodID, "food")
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByFoodID(ctx, id)
	if err != nil {
		return nil, ErrInternal("failed to get reviews", err)
	}

	return s.withReviewers(ctx, reviews)
}

// ListByUser returns the actor's reviews with their target names.
func (s *reviewService) ListByUser(ctx context.Context, actor Actor) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, actor.ID)
	if err != nil {
		return nil, ErrInternal("failed to get reviews", err)
	}

	result := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		var (
			restaurant *entity.Restaurant
			food       *entity.Food
		)
		if review.RestaurantID != nil {
			restaurant, err = s.repo.Restaurant.FindByID(ctx, *review.RestaurantID)
		} else if review.FoodID != nil {
			food, err = s.repo.Food.FindByID(ctx, *review.FoodID)
		}
		if err != nil {
			return nil, ErrInternal("failed to get review target", err)
		}
		result = append(result, response.ReviewToResponse(review, nil, restaurant, food))
	}

	return result, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, actor Actor, id string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	// only the author edits, admins included
	if review.UserID != actor.ID {
		return nil, ErrUnauthorized("Not authorized to update this review")
	}

	if err := checkBody(req); err != nil {
		return nil, err
	}

	review.Rating = pickInt(req.Rating, review.Rating)
	if req.Comment != nil && *req.Comment != "" {
		review.Comment = req.Comment
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, ErrInternal("failed to update review", err)
	}

	s.log.Info("Review updated", zap.String("review_id", id))

	resp := response.ReviewToResponse(review, nil, nil, nil)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor Actor, id string) error {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return err
	}

	if err := authorizeOwner(actor, review.UserID, "Not authorized to delete this review"); err != nil {
		s.log.Warn("Review delete denied",
			zap.String("review_id", id),
			zap.String("user_id", actor.ID.String()),
		)
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		return ErrInternal("failed to delete review", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", id))
	return nil
}

func (s *reviewService) findReview(ctx context.Context, id string) (*entity.Review, error) {
	reviewID, err := parseID(id, "review")
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, ErrInternal("failed to get review", err)
	}
	if review == nil {
		return nil, ErrNotFound("Review not found")
	}

	return review, nil
}

func (s *reviewService) withReviewers(ctx context.Context, reviews []*entity.Review) ([]response.ReviewResponse, error) {
	users := make(map[uuid.UUID]*entity.User)
	result := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		user, seen := users[review.UserID]
		if !seen {
			var err error
			user, err = s.repo.User.FindByID(ctx, review.UserID)
			if err != nil {
				return nil, ErrInternal("failed to get reviewer", err)
			}
			users[review.UserID] = user
		}
		result = append(result, response.ReviewToResponse(review, user, nil, nil))
	}
	return result, nil
}
