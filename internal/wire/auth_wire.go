package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/entity"
	"food-ordering/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	limiter middleware.Limiter,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.With(middleware.RateLimit(limiter, "register", log)).
		Post("/api/auth/register", authHandler.Register)
	r.With(middleware.RateLimit(limiter, "login", log)).
		Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		// GET /api/auth/me - Current user, with restaurant for restaurant accounts
		r.Get("/api/auth/me", userHandler.GetProfile)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAnyRole(log, entity.RoleAdmin))

			r.Get("/api/auth/users", userHandler.ListUsers)
			r.Delete("/api/auth/users/{id}", userHandler.DeleteUser)
		})
	})
}
