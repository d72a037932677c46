package entity

import (
	"github.com/google/uuid"
)

// Review targets exactly one of a restaurant or a food.
type Review struct {
	BaseSimple
	UserID       uuid.UUID  `db:"user_id"`
	RestaurantID *uuid.UUID `db:"restaurant_id"`
	FoodID       *uuid.UUID `db:"food_id"`
	Rating       int        `db:"rating"` // 1-5
	Comment      *string    `db:"comment"`
}
