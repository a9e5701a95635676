package domain

import "time"

// Review represents a user review of a parking space
type Review struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	Rating    int // 1..5
	Comment   *string
	CreatedAt time.Time
}

// IsValidRating проверяет, что оценка в допустимом диапазоне
func IsValidRating(rating int) bool {
	return rating >= MinReviewRating && rating <= MaxReviewRating
}
