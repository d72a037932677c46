package request

// CreateReviewRequest targets exactly one of restaurant or food.
type CreateReviewRequest struct {
	Restaurant *string `json:"restaurant,omitempty" validate:"omitempty,uuid"`
	Food       *string `json:"food,omitempty" validate:"omitempty,uuid"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
