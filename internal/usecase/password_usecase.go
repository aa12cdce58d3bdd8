package usecase

import (
	"context"

	"passmanager/internal/domain/entity"

	"github.com/google/uuid"
)

// Credentials identify the account owner on every password manager call.
type Credentials struct {
	Username string
	Password string
}

// AddPasswordInput defines a new service entry.
type AddPasswordInput struct {
	ServiceName     string
	ServicePassword string
}

// UpdatePasswordInput defines the replacement values of an entry.
type UpdatePasswordInput struct {
	ServiceName     string
	ServicePassword string
}

// PasswordUsecase manages the stored service passwords of an authenticated user.
// Every method re-checks the credentials before touching the store.
type PasswordUsecase interface {
	AddPassword(ctx context.Context, creds Credentials, input *AddPasswordInput) (*entity.ServicePassword, error)
	GetPasswords(ctx context.Context, creds Credentials) ([]*entity.ServicePassword, error)
	GetPassword(ctx context.Context, creds Credentials, serviceName string) (*entity.ServicePassword, error)
	UpdatePassword(ctx context.Context, creds Credentials, entryID uuid.UUID, input *UpdatePasswordInput) (*entity.ServicePassword, error)
	UpdatePasswordByServiceName(ctx context.Context, creds Credentials, serviceName, servicePassword string) (*entity.ServicePassword, error)
	DeletePassword(ctx context.Context, creds Credentials, serviceName string) error
	ExportPasswordQR(ctx context.Context, creds Credentials, serviceName string) ([]byte, error)
}
