// Package entity contains the core business objects of the tracker,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by a unique email. The stored credential is a
// bcrypt hash; the plaintext password never leaves the request that carried it.
type User struct {
	ID           uuid.UUID // Unique identifier for the account.
	Email        string    // Login identifier. Unique, case-sensitive.
	PasswordHash string    // bcrypt hash of the password. Never serialized to clients.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
