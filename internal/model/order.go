package model

import "time"

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "Pending"

// OrderItem is one line of an order.
type OrderItem struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

// Order represents a placed order in the database.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PlaceOrderRequest represents an order placement payload.
type PlaceOrderRequest struct {
	Items []OrderItem `json:"items"`
}

// UpdateOrderStatusRequest represents an admin status change payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderFilter narrows an order listing. Empty fields match everything.
type OrderFilter struct {
	Status string
	UserID string
}
