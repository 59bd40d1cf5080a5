package service

import (
	"context"

	"github.com/pizzapie/pizzapie-go/internal/model"
)

// UserStore is the persistence surface the auth and OTP services need.
// Implementations signal missing rows with repository.ErrUserNotFound.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// FoodStore is the catalog persistence surface.
type FoodStore interface {
	Create(ctx context.Context, food *model.Food) error
	GetByID(ctx context.Context, id string) (*model.Food, error)
	List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, food *model.Food) error
	Delete(ctx context.Context, id string) error
}

// OrderStore is the order persistence surface. Create must write the order
// and its items atomically.
type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ReviewStore is the review persistence surface.
type ReviewStore interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	ListByFood(ctx context.Context, foodID string) ([]model.ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}
