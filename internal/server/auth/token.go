// Package auth implements the token service: minting and validating signed
// bearer tokens without any server-side session state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/citykeeper/internal/common"
	"github.com/dmitrijs2005/citykeeper/internal/server/config"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// refreshTokenSize is the number of random bytes behind a refresh token.
const refreshTokenSize = 64

// Claims is the claim set carried by an access token. The registered claims
// hold subject (user ID), jti (a per-token nonce so two tokens for the same
// user are never identical), iat, iss, aud and exp; Email is a secondary
// identity claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService mints and validates bearer tokens. All methods are pure apart
// from the CSPRNG draws for the jti claim and the refresh token.
type TokenService struct {
	issuer               string
	audience             string
	secretKey            []byte
	accessTokenValidity  time.Duration
	refreshTokenValidity time.Duration
}

// NewTokenService constructs a TokenService from server configuration.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		issuer:               cfg.JWT.Issuer,
		audience:             cfg.JWT.Audience,
		secretKey:            []byte(cfg.JWT.SecretKey),
		accessTokenValidity:  cfg.AccessTokenValidity(),
		refreshTokenValidity: cfg.RefreshTokenValidity(),
	}
}

// CreateToken mints a signed HS256 access token for the user together with a
// fresh opaque refresh token. Nothing is persisted.
func (s *TokenService) CreateToken(user *models.User) (*models.AuthenticationResponse, error) {
	now := time.Now()
	expiration := now.Add(s.accessTokenValidity)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
		Email: user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}

	return &models.AuthenticationResponse{
		Email:                  user.Email,
		Token:                  token,
		Expiration:             expiration,
		RefreshToken:           common.MakeRandBase64String(refreshTokenSize),
		RefreshTokenExpiration: now.Add(s.refreshTokenValidity),
	}, nil
}

// ValidateToken verifies the token signature, algorithm (HS256 only; anything
// else including "none" is rejected), issuer and audience, and returns the
// claims. checkExpiry selects whether the lifetime is validated: the refresh
// exchange intentionally passes false because the token it inspects is
// known-expired, while request authorization must pass true.
func (s *TokenService) ValidateToken(tokenString string, checkExpiry bool) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	// WithoutClaimsValidation skips issuer/audience checks too; redo them by hand.
	if !checkExpiry {
		if claims.Issuer != s.issuer || !containsAudience(claims.Audience, s.audience) {
			return nil, common.ErrInvalidToken
		}
	}

	return claims, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
