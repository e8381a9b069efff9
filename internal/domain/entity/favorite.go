package entity

import "time"

// Favorite links a user (by email) to a content.
type Favorite struct {
	ID         int64     `json:"favoriteID"`
	Email      string    `json:"email"`
	WisataID   int64     `json:"wisataID"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
