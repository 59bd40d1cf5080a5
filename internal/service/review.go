package service

import (
	"context"
	"errors"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentRequired = errors.New("comment is required")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewAuthor = errors.New("not authorized to delete this review")
)

// ReviewService handles review business logic.
type ReviewService struct {
	reviews ReviewStore
	foods   FoodStore
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews ReviewStore, foods FoodStore) *ReviewService {
	return &ReviewService{reviews: reviews, foods: foods}
}

// Add creates a review authored by the authenticated user. The reviewed food
// must exist at the time of writing.
func (s *ReviewService) Add(ctx context.Context, userID string, req model.ReviewRequest) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if req.Comment == "" {
		return nil, ErrCommentRequired
	}

	if _, err := s.foods.GetByID(ctx, req.FoodID); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	review := &model.Review{
		UserID:  userID,
		FoodID:  req.FoodID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForFood returns a food's reviews with author details.
func (s *ReviewService) ListForFood(ctx context.Context, foodID string) ([]model.ReviewResponse, error) {
	return s.reviews.ListByFood(ctx, foodID)
}

// Delete removes a review. Only its author may delete it; anyone else gets
// ErrNotReviewAuthor and the review stays.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrNotReviewAuthor
	}

	return s.reviews.Delete(ctx, reviewID)
}
