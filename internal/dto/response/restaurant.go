package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type RestaurantResponse struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"ownerId"`
	Owner         *UserSummary   `json:"owner,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	CuisineType   string         `json:"cuisineType"`
	OpeningHours  string         `json:"openingHours"`
	ContactNumber string         `json:"contactNumber"`
	Images        []entity.Image `json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type RestaurantDetailResponse struct {
	RestaurantResponse
	Foods         []FoodResponse   `json:"foods"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

// RestaurantSummary is the embedded form of a restaurant inside other resources.
type RestaurantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

func RestaurantToResponse(restaurant *entity.Restaurant, owner *entity.User) RestaurantResponse {
	images := restaurant.Images
	if images == nil {
		images = []entity.Image{}
	}

	return RestaurantResponse{
		ID:            restaurant.ID.String(),
		OwnerID:       restaurant.OwnerID.String(),
		Owner:         UserToSummary(owner, true),
		Name:          restaurant.Name,
		Description:   restaurant.Description,
		Location:      restaurant.Location,
		CuisineType:   restaurant.CuisineType,
		OpeningHours:  restaurant.OpeningHours,
		ContactNumber: restaurant.ContactNumber,
		Images:        images,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
}

func RestaurantToSummary(restaurant *entity.Restaurant, withLocation bool) *RestaurantSummary {
	if restaurant == nil {
		return nil
	}
	summary := &RestaurantSummary{ID: restaurant.ID.String(), Name: restaurant.Name}
	if withLocation {
		summary.Location = restaurant.Location
	}
	return summary
}
