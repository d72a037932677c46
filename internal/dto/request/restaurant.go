package request

// UpdateRestaurantRequest carries a partial update. Absent, empty and zero
// values leave the stored field untouched.
type UpdateRestaurantRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	CuisineType   *string `json:"cuisineType,omitempty" validate:"omitempty,max=100"`
	OpeningHours  *string `json:"openingHours,omitempty" validate:"omitempty,max=100"`
	ContactNumber *string `json:"contactNumber,omitempty" validate:"omitempty,max=30"`
}
