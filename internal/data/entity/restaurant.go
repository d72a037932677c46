package entity

import "github.com/google/uuid"

type Restaurant struct {
	Base
	OwnerID       uuid.UUID `db:"owner_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Location      string    `db:"location"`
	CuisineType   string    `db:"cuisine_type"`
	OpeningHours  string    `db:"opening_hours"`
	ContactNumber string    `db:"contact_number"`
	Images        []Image   `db:"images"`
}
