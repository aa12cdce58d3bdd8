// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passmanager/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Password string
}

// UpdateUserInput carries the replacement account password.
type UpdateUserInput struct {
	NewPassword string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	// GetUserByUsername returns nil without an error when the user is unknown or the password is wrong.
	GetUserByUsername(ctx context.Context, username, password string) (*entity.User, error)
	UpdateUser(ctx context.Context, username, oldPassword string, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, username, password string) error
}
