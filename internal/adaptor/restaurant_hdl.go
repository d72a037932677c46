package adaptor

import (
	"net/http"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// ListRestaurants handles GET /api/restaurants (public)
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListRestaurants(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetRestaurant handles GET /api/restaurants/{id} (public)
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.service.GetRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// UpdateRestaurant handles PUT /api/restaurants/{id} (restaurant role)
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := decodeUpdate[request.UpdateRestaurantRequest](w, r)

	restaurant, err := h.service.UpdateRestaurant(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated successfully", restaurant)
}

// UploadImages handles PUT /api/restaurants/{id}/images (restaurant role, multipart)
func (h *RestaurantHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	files, closeFiles, err := readImages(w, r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}
	defer closeFiles()

	restaurant, err := h.service.AttachImages(r.Context(), actor, chi.URLParam(r, "id"), files)
	if err != nil {
		handleServiceError(h.log, w, err, "upload restaurant images")
		return
	}

	utils.ResponseSuccess(w, "Images uploaded successfully", restaurant)
}

// DeleteImage handles DELETE /api/restaurants/{id}/images/{imageId} (restaurant role)
func (h *RestaurantHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	restaurant, err := h.service.DetachImage(r.Context(), actor, chi.URLParam(r, "id"), imageIDParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "delete restaurant image")
		return
	}

	utils.ResponseSuccess(w, "Image deleted successfully", restaurant)
}
