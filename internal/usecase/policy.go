package usecase

import (
	"reflect"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role entity.UserRole
}

// IsAdmin reports whether the actor bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// authorizeOwner allows admins and the owner of a resource, nobody else.
func authorizeOwner(actor Actor, ownerID uuid.UUID, message string) error {
	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return ErrUnauthorized(message)
}

func parseID(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrBadRequest("Invalid " + name + " ID")
	}
	return id, nil
}

// pick applies an optional update. Absent and empty values keep current.
func pick(update *string, current string) string {
	if update == nil || *update == "" {
		return current
	}
	return *update
}

func pickFloat(update *float64, current float64) float64 {
	if update == nil || *update == 0 {
		return current
	}
	return *update
}

func pickInt(update *int, current int) int {
	if update == nil || *update == 0 {
		return current
	}
	return *update
}

func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

// checkBody validates an update body once the actor is authorized. A nil
// body means the request could not be decoded.
func checkBody(req any) error {
	if req == nil || reflect.ValueOf(req).IsNil() {
		return ErrBadRequest("Invalid request body")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return ErrValidation(errs)
	}
	return nil
}
