package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pizzapie/pizzapie-go/internal/middleware"
	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

// ReviewHandler handles HTTP requests for food reviews.
type ReviewHandler struct {
	service *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// HandleAdd handles POST /api/review requests. The author is always the
// authenticated caller.
func (h *ReviewHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not logged in"))
		return
	}

	var req model.ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.service.Add(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrCommentRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrFoodNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("food not found"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "review added", "review": review})
}

// HandleListForFood handles GET /api/review/{foodId} requests.
func (h *ReviewHandler) HandleListForFood(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListForFood(r.Context(), chi.URLParam(r, "foodId"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "reviews": reviews})
}

// HandleDelete handles DELETE /api/review/{id} requests. Authors only.
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not logged in"))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("review not found"))
		case errors.Is(err, service.ErrNotReviewAuthor):
			writeJSON(w, http.StatusForbidden, errorResponse("not authorized to delete this review"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "review deleted"})
}
