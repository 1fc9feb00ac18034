package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Email comparison is case-insensitive and unique;
// the password is only ever stored as a bcrypt hash. AccessFailedCount and
// LockoutUntil back the login lockout check.
type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	PhoneNumber       string
	IPAddress         string
	AccessFailedCount int
	LockoutUntil      *time.Time
	CreatedAt         time.Time
}
