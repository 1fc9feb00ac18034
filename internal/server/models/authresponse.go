package models

import "time"

// AuthenticationResponse is returned on successful registration and login.
// It is never persisted: the access token is self-contained and the refresh
// token is an opaque secret held only by the client.
type AuthenticationResponse struct {
	Email                  string    `json:"email"`
	Token                  string    `json:"token"`
	Expiration             time.Time `json:"expiration"`
	RefreshToken           string    `json:"refreshToken"`
	RefreshTokenExpiration time.Time `json:"refreshTokenExpiration"`
}
