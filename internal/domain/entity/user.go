package entity

import (
	"time"
)

// User is an account. Email is the natural identity; Password holds the bcrypt hash
// and is never serialized.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Password   string    `json:"-"`
	Role       Role      `json:"role"`
	WisataName *string   `json:"wisataName,omitempty"`
	ProfilePic *string   `json:"profilePic,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Identity is what an access token carries about its subject.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}
