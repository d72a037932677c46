package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProfileResponse is the current user, plus their restaurant for restaurant accounts.
type ProfileResponse struct {
	UserResponse
	Restaurant *RestaurantResponse `json:"restaurant,omitempty"`
}

// UserSummary is the embedded form of a user inside other resources.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Address:   user.Address,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		User:      UserToResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

func UserToSummary(user *entity.User, withEmail bool) *UserSummary {
	if user == nil {
		return nil
	}
	summary := &UserSummary{ID: user.ID.String(), Name: user.Name}
	if withEmail {
		summary.Email = user.Email
	}
	return summary
}
