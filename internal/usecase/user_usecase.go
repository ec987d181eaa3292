// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"jobtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserProfile is the public projection of a User. It never carries the
// password hash or any internal versioning field.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserProfile maps a User entity to its public profile.
func NewUserProfile(user *entity.User) *UserProfile {
	return &UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// AuthOutput returns the authenticated user and the session token the
// delivery layer places into the cookie.
type AuthOutput struct {
	User  *UserProfile
	Token string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new account and issues a session token.
	// Fails with ErrEmailAlreadyRegistered on a duplicate email.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password produce the identical ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Profile returns the public profile for a verified identity.
	Profile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
