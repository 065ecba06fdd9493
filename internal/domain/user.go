package domain

import (
	"context"
	"time"
)

// User represents a registered account. Phone and DOB are optional and stored
// as given; DOB is an ISO YYYY-MM-DD string, not a parsed date.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	DOB          string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
