package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pizzapie/pizzapie-go/internal/middleware"
	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

// HandlePlace handles POST /api/orders requests.
func (h *OrderHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not logged in"))
		return
	}

	var req model.PlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.service.Place(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoItems), errors.Is(err, service.ErrInvalidQuantity):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrFoodNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("food not found"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "order": order})
}

// HandleListMine handles GET /api/orders/my-orders requests.
func (h *OrderHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not logged in"))
		return
	}

	orders, err := h.service.ListMine(r.Context(), identity.UserID, r.URL.Query().Get("status"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": orders})
}

// HandleGet handles GET /api/orders/{id} requests. Owners only.
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not logged in"))
		return
	}

	order, err := h.service.Get(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("order not found"))
		case errors.Is(err, service.ErrNotOrderOwner):
			writeJSON(w, http.StatusForbidden, errorResponse("not your order"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": order})
}

// HandleListAll handles GET /api/orders requests with optional status and
// userId filters. Admin only.
func (h *OrderHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	filter := model.OrderFilter{
		Status: r.URL.Query().Get("status"),
		UserID: r.URL.Query().Get("userId"),
	}

	orders, err := h.service.ListAll(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": orders})
}

// HandleUpdateStatus handles PUT /api/orders/{id}/status requests. Admin only.
func (h *OrderHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatusRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrOrderNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("order not found"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "order status updated", "order": order})
}
