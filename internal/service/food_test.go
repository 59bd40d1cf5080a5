package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

func TestCreateFoodValidation(t *testing.T) {
	svc := NewFoodService(new(MockFoodStore), new(MockReviewStore))
	ctx := context.Background()

	_, err := svc.Create(ctx, model.FoodRequest{Category: "pizza", Price: 9.5})
	assert.ErrorIs(t, err, ErrFoodNameRequired)

	_, err = svc.Create(ctx, model.FoodRequest{Name: "Margherita", Price: 9.5})
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.Create(ctx, model.FoodRequest{Name: "Margherita", Category: "pizza"})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreateFoodDefaultsAvailable(t *testing.T) {
	foods := new(MockFoodStore)
	svc := NewFoodService(foods, new(MockReviewStore))

	foods.On("Create", mock.Anything, mock.AnythingOfType("*model.Food")).Return(nil)

	food, err := svc.Create(context.Background(), model.FoodRequest{
		Name:     "Margherita",
		Category: "pizza",
		Price:    9.5,
	})
	require.NoError(t, err)
	assert.True(t, food.Available)
}

func TestGetFoodWithReviews(t *testing.T) {
	foods := new(MockFoodStore)
	reviews := new(MockReviewStore)
	svc := NewFoodService(foods, reviews)

	foods.On("GetByID", mock.Anything, "food-a").Return(&model.Food{ID: "food-a", Name: "Margherita"}, nil)
	reviews.On("ListByFood", mock.Anything, "food-a").Return([]model.ReviewResponse{{ID: "review-1"}}, nil)

	got, err := svc.Get(context.Background(), "food-a")
	require.NoError(t, err)
	assert.Equal(t, "Margherita", got.Food.Name)
	assert.Len(t, got.Reviews, 1)
}

func TestGetFoodNotFound(t *testing.T) {
	foods := new(MockFoodStore)
	svc := NewFoodService(foods, new(MockReviewStore))

	foods.On("GetByID", mock.Anything, "gone").Return(nil, repository.ErrFoodNotFound)

	_, err := svc.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteFoodNotFound(t *testing.T) {
	foods := new(MockFoodStore)
	svc := NewFoodService(foods, new(MockReviewStore))

	foods.On("Delete", mock.Anything, "gone").Return(repository.ErrFoodNotFound)

	err := svc.Delete(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
