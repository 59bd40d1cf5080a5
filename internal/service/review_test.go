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

func TestAddReview(t *testing.T) {
	reviews := new(MockReviewStore)
	foods := new(MockFoodStore)
	svc := NewReviewService(reviews, foods)

	foods.On("GetByID", mock.Anything, "food-a").Return(&model.Food{ID: "food-a"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

	review, err := svc.Add(context.Background(), "user-1", model.ReviewRequest{
		FoodID:  "food-a",
		Rating:  4,
		Comment: "crispy crust",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, 4, review.Rating)
}

func TestAddReviewValidation(t *testing.T) {
	svc := NewReviewService(new(MockReviewStore), new(MockFoodStore))
	ctx := context.Background()

	_, err := svc.Add(ctx, "user-1", model.ReviewRequest{FoodID: "food-a", Rating: 0, Comment: "x"})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Add(ctx, "user-1", model.ReviewRequest{FoodID: "food-a", Rating: 6, Comment: "x"})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Add(ctx, "user-1", model.ReviewRequest{FoodID: "food-a", Rating: 3})
	assert.ErrorIs(t, err, ErrCommentRequired)
}

func TestAddReviewUnknownFood(t *testing.T) {
	reviews := new(MockReviewStore)
	foods := new(MockFoodStore)
	svc := NewReviewService(reviews, foods)

	foods.On("GetByID", mock.Anything, "gone").Return(nil, repository.ErrFoodNotFound)

	_, err := svc.Add(context.Background(), "user-1", model.ReviewRequest{
		FoodID:  "gone",
		Rating:  3,
		Comment: "x",
	})
	assert.ErrorIs(t, err, ErrFoodNotFound)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteReviewByAuthor(t *testing.T) {
	reviews := new(MockReviewStore)
	svc := NewReviewService(reviews, new(MockFoodStore))

	reviews.On("GetByID", mock.Anything, "review-1").Return(&model.Review{ID: "review-1", UserID: "user-1"}, nil)
	reviews.On("Delete", mock.Anything, "review-1").Return(nil)

	err := svc.Delete(context.Background(), "user-1", "review-1")
	require.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestDeleteReviewByOtherUser(t *testing.T) {
	reviews := new(MockReviewStore)
	svc := NewReviewService(reviews, new(MockFoodStore))

	reviews.On("GetByID", mock.Anything, "review-1").Return(&model.Review{ID: "review-1", UserID: "user-1"}, nil)

	err := svc.Delete(context.Background(), "user-2", "review-1")
	assert.ErrorIs(t, err, ErrNotReviewAuthor)

	// The review stays persisted.
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteReviewNotFound(t *testing.T) {
	reviews := new(MockReviewStore)
	svc := NewReviewService(reviews, new(MockFoodStore))

	reviews.On("GetByID", mock.Anything, "gone").Return(nil, repository.ErrReviewNotFound)

	err := svc.Delete(context.Background(), "user-1", "gone")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
