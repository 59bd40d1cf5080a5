package service

import (
	"context"
	"errors"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

var (
	ErrFoodNameRequired = errors.New("food name is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrFoodNotFound     = errors.New("food not found")
)

// FoodService handles catalog business logic.
type FoodService struct {
	foods   FoodStore
	reviews ReviewStore
}

// NewFoodService creates a new FoodService.
func NewFoodService(foods FoodStore, reviews ReviewStore) *FoodService {
	return &FoodService{foods: foods, reviews: reviews}
}

// Create adds a new food to the catalog. Availability defaults to true.
func (s *FoodService) Create(ctx context.Context, req model.FoodRequest) (*model.Food, error) {
	if err := validateFoodRequest(req); err != nil {
		return nil, err
	}

	food := &model.Food{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Available:   true,
	}
	if req.Available != nil {
		food.Available = *req.Available
	}

	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// Get returns a single food with its reviews.
func (s *FoodService) Get(ctx context.Context, id string) (*model.FoodWithReviews, error) {
	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.ListByFood(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.FoodWithReviews{Food: *food, Reviews: reviews}, nil
}

// List returns the catalog filtered by category and name search.
func (s *FoodService) List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error) {
	return s.foods.List(ctx, filter)
}

// Categories returns the distinct catalog categories.
func (s *FoodService) Categories(ctx context.Context) ([]string, error) {
	return s.foods.Categories(ctx)
}

// Update replaces a food's fields.
func (s *FoodService) Update(ctx context.Context, id string, req model.FoodRequest) (*model.Food, error) {
	if err := validateFoodRequest(req); err != nil {
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	food.Name = req.Name
	food.Category = req.Category
	food.Price = req.Price
	food.Description = req.Description
	food.ImageURL = req.ImageURL
	if req.Available != nil {
		food.Available = *req.Available
	}

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a food. Orders and reviews referencing it are left alone.
func (s *FoodService) Delete(ctx context.Context, id string) error {
	err := s.foods.Delete(ctx, id)
	if errors.Is(err, repository.ErrFoodNotFound) {
		return ErrFoodNotFound
	}
	return err
}

func validateFoodRequest(req model.FoodRequest) error {
	if req.Name == "" {
		return ErrFoodNameRequired
	}
	if req.Category == "" {
		return ErrCategoryRequired
	}
	if req.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
