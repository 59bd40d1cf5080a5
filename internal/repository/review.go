package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pizzapie/pizzapie-go/internal/model"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository handles review persistence operations.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review, assigning it a fresh ID.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC()

	query := `INSERT INTO reviews (id, user_id, food_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.UserID, review.FoodID, review.Rating, review.Comment, review.CreatedAt,
	)
	return err
}

// GetByID retrieves a review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	query := `SELECT id, user_id, food_id, rating, comment, created_at FROM reviews WHERE id = ?`

	review := &model.Review{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.UserID, &review.FoodID, &review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return review, nil
}

// ListByFood returns a food's reviews with author name and picture, newest first.
func (r *ReviewRepository) ListByFood(ctx context.Context, foodID string) ([]model.ReviewResponse, error) {
	query := `SELECT r.id, r.user_id, r.food_id, r.rating, r.comment, r.created_at,
			u.name, u.profile_picture_url
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.food_id = ?
		ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.ReviewResponse
	for rows.Next() {
		var review model.ReviewResponse
		var picture sql.NullString
		err := rows.Scan(
			&review.ID, &review.UserID, &review.FoodID, &review.Rating, &review.Comment, &review.CreatedAt,
			&review.AuthorName, &picture,
		)
		if err != nil {
			return nil, err
		}
		review.AuthorPictureURL = picture.String
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// Delete removes a review.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
