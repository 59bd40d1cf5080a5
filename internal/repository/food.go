package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pizzapie/pizzapie-go/internal/model"
)

var ErrFoodNotFound = errors.New("food not found")

// FoodRepository handles catalog persistence operations.
type FoodRepository struct {
	db *sql.DB
}

// NewFoodRepository creates a new FoodRepository.
func NewFoodRepository(db *sql.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// Create inserts a new food, assigning it a fresh ID.
func (r *FoodRepository) Create(ctx context.Context, food *model.Food) error {
	food.ID = uuid.NewString()

	query := `INSERT INTO foods (id, name, category, price, description, image_url, available)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		food.ID, food.Name, food.Category, food.Price, food.Description, food.ImageURL, food.Available,
	)
	return err
}

// GetByID retrieves a food by its ID.
func (r *FoodRepository) GetByID(ctx context.Context, id string) (*model.Food, error) {
	query := `SELECT id, name, category, price, description, image_url, available FROM foods WHERE id = ?`

	food := &model.Food{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&food.ID, &food.Name, &food.Category, &food.Price, &food.Description, &food.ImageURL, &food.Available,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	return food, nil
}

// List returns foods matching the filter. Category matches exactly; search is
// a case-insensitive substring match on the name.
func (r *FoodRepository) List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error) {
	query := `SELECT id, name, category, price, description, image_url, available FROM foods`

	var conds []string
	var args []any
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []model.Food
	for rows.Next() {
		var food model.Food
		err := rows.Scan(
			&food.ID, &food.Name, &food.Category, &food.Price, &food.Description, &food.ImageURL, &food.Available,
		)
		if err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

// Categories returns the distinct category values across the catalog.
func (r *FoodRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM foods ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update persists every field of the food.
func (r *FoodRepository) Update(ctx context.Context, food *model.Food) error {
	query := `UPDATE foods SET name = ?, category = ?, price = ?, description = ?, image_url = ?, available = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		food.Name, food.Category, food.Price, food.Description, food.ImageURL, food.Available, food.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, food.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a food. It does not cascade: orders and reviews referencing
// the food keep their dangling IDs.
func (r *FoodRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFoodNotFound
	}
	return nil
}
