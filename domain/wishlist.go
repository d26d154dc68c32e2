package domain

import "time"

// Priority orders wishlist entries; high sorts before medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its ordinal for sorting (high=3, medium=2, low=1).
// Unknown values rank as low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// ParsePriority resolves a case-insensitive priority name, defaulting to medium
// for an empty string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	case "":
		return PriorityMedium, nil
	}
	return "", NewValidationError("priority", "must be high, medium or low", s)
}

// WishlistItem annotates a single product with user notes and a priority.
// It references the product by id and does not own it; at most one item
// exists per product.
type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	AddedDate time.Time `json:"addedDate"`
	Notes     string    `json:"notes"`
	Priority  Priority  `json:"priority"`
}
