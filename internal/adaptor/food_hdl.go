package adaptor

import (
	"net/http"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FoodHandler struct {
	service usecase.FoodService
	log     *zap.Logger
}

func NewFoodHandler(service usecase.FoodService, log *zap.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		log:     log.With(zap.String("handler", "food")),
	}
}

// ListFoods handles GET /api/foods (public)
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ListFoods(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list foods")
		return
	}

	utils.ResponseSuccess(w, "success", foods)
}

// ListByRestaurant handles GET /api/foods/restaurant/{restaurantId} (public)
func (h *FoodHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ListFoodsByRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		handleServiceError(h.log, w, err, "list restaurant foods")
		return
	}

	utils.ResponseSuccess(w, "success", foods)
}

// GetFood handles GET /api/foods/{id} (public)
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.service.GetFood(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get food")
		return
	}

	utils.ResponseSuccess(w, "success", food)
}

// CreateFood handles POST /api/foods (restaurant role)
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateFoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	food, err := h.service.CreateFood(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create food")
		return
	}

	utils.ResponseCreated(w, "Food created successfully", food)
}

// UpdateFood handles PUT /api/foods/{id} (restaurant role)
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := decodeUpdate[request.UpdateFoodRequest](w, r)

	food, err := h.service.UpdateFood(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "update food")
		return
	}

	utils.ResponseSuccess(w, "Food updated successfully", food)
}

// DeleteFood handles DELETE /api/foods/{id} (restaurant role)
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteFood(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete food")
		return
	}

	utils.ResponseSuccess(w, "Food deleted successfully", nil)
}

// UploadImages handles PUT /api/foods/{id}/images (restaurant role, multipart)
func (h *FoodHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
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

	food, err := h.service.AttachImages(r.Context(), actor, chi.URLParam(r, "id"), files)
	if err != nil {
		handleServiceError(h.log, w, err, "upload food images")
		return
	}

	utils.ResponseSuccess(w, "Images uploaded successfully", food)
}

// DeleteImage handles DELETE /api/foods/{id}/images/{imageId} (restaurant role)
func (h *FoodHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	food, err := h.service.DetachImage(r.Context(), actor, chi.URLParam(r, "id"), imageIDParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "delete food image")
		return
	}

	utils.ResponseSuccess(w, "Image deleted successfully", food)
}
