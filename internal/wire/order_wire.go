package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/entity"
	"food-ordering/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		// ==================== CUSTOMER ROUTES ====================
		r.Post("/api/orders", orderHandler.CreateOrder)
		r.Get("/api/orders/myorders", orderHandler.ListMyOrders)
		r.Get("/api/orders/{id}", orderHandler.GetOrder)
		r.Put("/api/orders/{id}/cancel", orderHandler.CancelOrder)

		// ==================== RESTAURANT ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleRestaurant, log))

			r.Get("/api/orders/restaurant", orderHandler.ListRestaurantOrders)
			r.Put("/api/orders/{id}/status", orderHandler.UpdateStatus)
			r.Put("/api/orders/{id}/deliver", orderHandler.MarkDelivered)
		})
	})
}
