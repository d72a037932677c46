package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/entity"
	"food-ordering/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/restaurants", restaurantHandler.ListRestaurants)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurant)

	// ==================== RESTAURANT ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(entity.RoleRestaurant, log))

		r.Put("/api/restaurants/{id}", restaurantHandler.UpdateRestaurant)
		r.Put("/api/restaurants/{id}/images", restaurantHandler.UploadImages)
		r.Delete("/api/restaurants/{id}/images/*", restaurantHandler.DeleteImage)
	})
}
