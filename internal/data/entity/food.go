package entity

import "github.com/google/uuid"

type Food struct {
	Base
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        float64   `db:"price"`
	Category     string    `db:"category"`
	IsAvailable  bool      `db:"is_available"`
	Images       []Image   `db:"images"`
}
