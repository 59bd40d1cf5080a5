package model

// Food represents a catalog item in the database.
type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
}

// FoodRequest represents the payload for creating or updating a food.
type FoodRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

// FoodFilter narrows a catalog listing. Empty fields match everything.
type FoodFilter struct {
	Category string
	Search   string
}

// FoodWithReviews is a single food together with its reviews.
type FoodWithReviews struct {
	Food    Food             `json:"food"`
	Reviews []ReviewResponse `json:"reviews"`
}
