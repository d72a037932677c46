package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/restaurant/{restaurantId} - Reviews of a restaurant
	r.Get("/api/reviews/restaurant/{restaurantId}", reviewHandler.ListByRestaurant)

	// GET /api/reviews/food/{foodId} - Reviews of a food
	r.Get("/api/reviews/food/{foodId}", reviewHandler.ListByFood)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		// POST /api/reviews - Create new review
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// GET /api/reviews/my-reviews - Reviews written by the current user
		r.Get("/api/reviews/my-reviews", reviewHandler.ListMyReviews)

		// PUT /api/reviews/{id} - Update review (author only)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - Delete review (author or admin)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
