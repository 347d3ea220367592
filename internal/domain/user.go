package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	IsDisabled   bool      `json:"is_disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	Register(ctx context.Context, email, password, fullName, role string) (*User, error)
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
}
