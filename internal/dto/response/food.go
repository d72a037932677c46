package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type FoodResponse struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurantId"`
	Restaurant   *RestaurantSummary `json:"restaurant,omitempty"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Price        float64            `json:"price"`
	Category     string             `json:"category"`
	IsAvailable  bool               `json:"isAvailable"`
	Images       []entity.Image     `json:"images"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type FoodSummary struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

func FoodToResponse(food *entity.Food, restaurant *entity.Restaurant) FoodResponse {
	images := food.Images
	if images == nil {
		images = []entity.Image{}
	}

	return FoodResponse{
		ID:           food.ID.String(),
		RestaurantID: food.RestaurantID.String(),
		Restaurant:   RestaurantToSummary(restaurant, true),
		Name:         food.Name,
		Description:  food.Description,
		Price:        food.Price,
		Category:     food.Category,
		IsAvailable:  food.IsAvailable,
		Images:       images,
		CreatedAt:    food.CreatedAt,
		UpdatedAt:    food.UpdatedAt,
	}
}

func FoodToSummary(food *entity.Food, withPrice bool) *FoodSummary {
	if food == nil {
		return nil
	}
	summary := &FoodSummary{ID: food.ID.String(), Name: food.Name}
	if withPrice {
		price := food.Price
		summary.Price = &price
	}
	return summary
}
