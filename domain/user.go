package domain

import (
	"context"
)

// User represents the public profile of a commenter.
// Accounts are issued by the auth service; this service only reads them.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"fullname"`
	Username   string `json:"username"`
	ProfileImg string `json:"profile_img"`
}

// UserRepository defines the contract for user profile reads.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs skips ids that don't exist.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
