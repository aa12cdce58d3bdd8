package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServicePassword is one stored credential for an external service.
// At most one entry exists per (Username, ServiceName).
type ServicePassword struct {
	ID          uuid.UUID // Store-assigned identifier.
	Username    string    // Owner, references User.Username.
	ServiceName string    // Name of the external service, e.g. "github".
	Password    string    // Value stored for the service, kept as supplied.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
