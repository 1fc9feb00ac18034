// Package users declares the server-side repository contract for account
// records: the credential store behind the auth flow.
package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	// Create stores a new user. Email and phone uniqueness are enforced by
	// the store; a duplicate returns common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks up a user by email, compared case-insensitively.
	// Returns common.ErrNotFound when the account is absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// PhoneNumberExists reports whether any account uses the given phone number.
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// UpdateAccessFailure records the failed-login counter and an optional
	// lockout deadline.
	UpdateAccessFailure(ctx context.Context, userID uuid.UUID, failedCount int, lockoutUntil *time.Time) error

	// Delete removes the account. Returns common.ErrNotFound when no row matched.
	Delete(ctx context.Context, userID uuid.UUID) error
}
