package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type ReviewResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	User         *UserSummary       `json:"user,omitempty"`
	RestaurantID string             `json:"restaurantId,omitempty"`
	Restaurant   *RestaurantSummary `json:"restaurant,omitempty"`
	FoodID       string             `json:"foodId,omitempty"`
	Food         *FoodSummary       `json:"food,omitempty"`
	Rating       int                `json:"rating"`
	Comment      *string            `json:"comment,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, user *entity.User, restaurant *entity.Restaurant, food *entity.Food) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID.String(),
		UserID:     review.UserID.String(),
		User:       UserToSummary(user, false),
		Restaurant: RestaurantToSummary(restaurant, false),
		Food:       FoodToSummary(food, false),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}

	if review.RestaurantID != nil {
		resp.RestaurantID = review.RestaurantID.String()
	}
	if review.FoodID != nil {
		resp.FoodID = review.FoodID.String()
	}

	return resp
}
