// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns stored service passwords.
// Username is the login identifier and never changes after registration.
type User struct {
	ID           uuid.UUID // Store-assigned identifier.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash of the account password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
