// Package common defines shared constants and sentinel errors used across
// CityKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already in use")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Credential errors. Deliberately a single message for any failed
	// password check, locked accounts included.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
