package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

// FoodHandler handles HTTP requests for the food catalog.
type FoodHandler struct {
	service *service.FoodService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(svc *service.FoodService) *FoodHandler {
	return &FoodHandler{service: svc}
}

// HandleCategories handles GET /api/foods/categories requests.
func (h *FoodHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// HandleList handles GET /api/foods requests with optional category and
// search query parameters.
func (h *FoodHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := model.FoodFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	foods, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"foods": foods})
}

// HandleGet handles GET /api/foods/{id} requests, returning the food with
// its reviews.
func (h *FoodHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("food not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/foods requests. Admin only.
func (h *FoodHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.FoodRequest
	if !decodeBody(w, r, &req) {
		return
	}

	food, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeFoodError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "food added successfully", "food": food})
}

// HandleUpdate handles PUT /api/foods/{id} requests. Admin only.
func (h *FoodHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.FoodRequest
	if !decodeBody(w, r, &req) {
		return
	}

	food, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeFoodError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "food updated successfully", "food": food})
}

// HandleDelete handles DELETE /api/foods/{id} requests. Admin only.
func (h *FoodHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeFoodError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "food deleted successfully"})
}

func writeFoodError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrFoodNameRequired),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrInvalidPrice):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrFoodNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("food not found"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
