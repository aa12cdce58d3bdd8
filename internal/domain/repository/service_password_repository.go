package repository

import (
	"context"
	"errors"

	"passmanager/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServicePasswordNotFound is returned when no entry matches the lookup.
var ErrServicePasswordNotFound = errors.New("service password not found")

// ServicePasswordRepository persists per-user service password entries.
// Every lookup is scoped to a username.
type ServicePasswordRepository interface {
	// Create persists a new entry and fills in its ID and timestamps.
	Create(ctx context.Context, entry *entity.ServicePassword) error

	// FindByUsername returns all entries owned by username ordered by service name.
	FindByUsername(ctx context.Context, username string) ([]*entity.ServicePassword, error)

	// FindByIDAndUsername retrieves an entry by ID, only if it is owned by username.
	FindByIDAndUsername(ctx context.Context, id uuid.UUID, username string) (*entity.ServicePassword, error)

	// FindByUsernameAndServiceName retrieves the entry for one service of username.
	FindByUsernameAndServiceName(ctx context.Context, username, serviceName string) (*entity.ServicePassword, error)

	// Update overwrites the service name and password of an existing entry.
	Update(ctx context.Context, entry *entity.ServicePassword) error

	// DeleteByUsernameAndServiceName removes the entry for one service of username.
	DeleteByUsernameAndServiceName(ctx context.Context, username, serviceName string) error

	// DeleteByUsername removes every entry owned by username.
	DeleteByUsername(ctx context.Context, username string) error
}
