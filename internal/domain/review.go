package domain

import "time"

// Review represents a customer's rating of a field, independent of the
// booking lifecycle
type Review struct {
	ID        int64
	UserID    int64
	FieldID   int64
	Rating    int // 1-5 stars
	Comment   *string
	Images    []string
	CreatedAt time.Time
}

// ValidRating returns true if the rating is within the allowed range
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
