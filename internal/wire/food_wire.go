package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/entity"
	"food-ordering/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFood(
	r chi.Router,
	foodHandler *adaptor.FoodHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/foods", foodHandler.ListFoods)
	r.Get("/api/foods/restaurant/{restaurantId}", foodHandler.ListByRestaurant)
	r.Get("/api/foods/{id}", foodHandler.GetFood)

	// ==================== RESTAURANT ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(entity.RoleRestaurant, log))

		r.Post("/api/foods", foodHandler.CreateFood)
		r.Put("/api/foods/{id}", foodHandler.UpdateFood)
		r.Delete("/api/foods/{id}", foodHandler.DeleteFood)
		r.Put("/api/foods/{id}/images", foodHandler.UploadImages)
		r.Delete("/api/foods/{id}/images/*", foodHandler.DeleteImage)
	})
}
