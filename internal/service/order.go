package service

import (
	"context"
	"errors"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

var (
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	ErrStatusRequired  = errors.New("status is required")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotOrderOwner   = errors.New("not your order")
)

// OrderService handles order business logic.
type OrderService struct {
	orders OrderStore
	foods  FoodStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders OrderStore, foods FoodStore) *OrderService {
	return &OrderService{orders: orders, foods: foods}
}

// Place creates an order for the user. The total is computed server-side by
// looking up each food's current price; any unresolvable food ID aborts the
// whole order before anything is persisted. Prices read here are not isolated
// from concurrent catalog updates.
func (s *OrderService) Place(ctx context.Context, userID string, req model.PlaceOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		food, err := s.foods.GetByID(ctx, item.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return nil, ErrFoodNotFound
			}
			return nil, err
		}

		total += food.Price * float64(item.Quantity)
	}

	order := &model.Order{
		UserID:     userID,
		Items:      req.Items,
		TotalPrice: total,
		Status:     model.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns a single order, visible only to its owner.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// ListMine returns the user's orders, optionally filtered by status.
func (s *OrderService) ListMine(ctx context.Context, userID, status string) ([]model.Order, error) {
	return s.orders.List(ctx, model.OrderFilter{UserID: userID, Status: status})
}

// ListAll returns all orders matching the filter. Admin surface.
func (s *OrderService) ListAll(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return s.orders.List(ctx, filter)
}

// UpdateStatus changes an order's status and returns the updated order.
// Admin surface.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
