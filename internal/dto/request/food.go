package request

type CreateFoodRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Restaurant  string   `json:"restaurant" validate:"required,uuid"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// UpdateFoodRequest follows the restaurant update rules, except that
// isAvailable is applied whenever it is present, false included.
type UpdateFoodRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}
