package usecase

import (
	"context"
	"errors"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, actor Actor, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal("failed to get profile", err)
	}
	if user == nil {
		return nil, ErrNotFound("User not found")
	}

	profile := &response.ProfileResponse{UserResponse: response.UserToResponse(user)}

	if user.Role == entity.RoleRestaurant {
		restaurant, err := us.repo.Restaurant.FindByOwnerID(ctx, user.ID)
		if err != nil {
			return nil, ErrInternal("failed to get restaurant", err)
		}
		if restaurant != nil {
			resp := response.RestaurantToResponse(restaurant, nil)
			profile.Restaurant = &resp
		}
	}

	return profile, nil
}

func (us *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	users, err := us.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, ErrInternal("failed to get users", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		return nil, ErrInternal("failed to count users", err)
	}

	userResponses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (us *userService) DeleteUser(ctx context.Context, actor Actor, userID string) error {
	id, err := parseID(userID, "user")
	if err != nil {
		return err
	}

	if id == actor.ID {
		return ErrBadRequest("Cannot delete your own account")
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		return ErrInternal("failed to find user", err)
	}
	if user == nil {
		return ErrNotFound("User not found")
	}

	err = us.repo.User.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrNotFound("User not found")
	case errors.Is(err, repository.ErrUserHasOrders):
		return ErrConflict("User has orders and cannot be deleted")
	case err != nil:
		return ErrInternal("failed to delete user", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", id.String()),
		zap.String("deleted_by", actor.ID.String()),
	)
	return nil
}
