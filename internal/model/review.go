package model

import "time"

// Review represents a food review in the database.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FoodID    string    `json:"food_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewRequest represents the payload for adding a review.
type ReviewRequest struct {
	FoodID  string `json:"food_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is a review together with its author's public details.
type ReviewResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	FoodID           string    `json:"food_id"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	AuthorName       string    `json:"author_name"`
	AuthorPictureURL string    `json:"author_picture_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
