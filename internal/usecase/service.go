package usecase

import (
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/storage"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Restaurant RestaurantService
	Food       FoodService
	Order      OrderService
	Review     ReviewService
}

func NewService(repo *repository.Repository, tokens *utils.TokenManager, host storage.ImageHost, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, tokens, log),
		User:       NewUserService(repo, log),
		Restaurant: NewRestaurantService(repo, host, log),
		Food:       NewFoodService(repo, host, log),
		Order:      NewOrderService(repo, log),
		Review:     NewReviewService(repo, log),
	}
}
