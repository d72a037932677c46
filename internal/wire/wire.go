package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/storage"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router
type App struct {
	Router *chi.Mux
}

// Deps are the collaborators built at startup. Limiter may be nil.
type Deps struct {
	Repo      *repository.Repository
	Tokens    *utils.TokenManager
	ImageHost storage.ImageHost
	Limiter   middleware.Limiter
}

// Wiring builds services, handlers and routes
func Wiring(deps Deps, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Tokens, deps.ImageHost, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, deps Deps, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	auth := middleware.AuthToken(deps.Tokens, deps.Repo.User, logger)

	// Apply routes
	wireAuth(r, handler.Auth, handler.User, auth, deps.Limiter, logger)
	wireRestaurant(r, handler.Restaurant, auth, logger)
	wireFood(r, handler.Food, auth, logger)
	wireOrder(r, handler.Order, auth, logger)
	wireReview(r, handler.Review, auth)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
