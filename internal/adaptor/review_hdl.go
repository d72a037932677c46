package adaptor

import (
	"net/http"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// ListByRestaurant handles GET /api/reviews/restaurant/{restaurantId} (public)
func (h *ReviewHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		handleServiceError(h.log, w, err, "list restaurant reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// ListByFood handles GET /api/reviews/food/{foodId} (public)
func (h *ReviewHandler) ListByFood(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByFood(r.Context(), chi.URLParam(r, "foodId"))
	if err != nil {
		handleServiceError(h.log, w, err, "list food reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// ListMyReviews handles GET /api/reviews/my-reviews (protected)
func (h *ReviewHandler) ListMyReviews(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviews, err := h.service.ListByUser(r.Context(), actor)
	if err != nil {
		handleServiceError(h.log, w, err, "list my reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// UpdateReview handles PUT /api/reviews/{id} (author only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := decodeUpdate[request.UpdateReviewRequest](w, r)

	review, err := h.service.UpdateReview(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// DeleteReview handles DELETE /api/reviews/{id} (author or admin)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteReview(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}
