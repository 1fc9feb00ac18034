// Package services contains server-side business logic. This file implements
// AccountService, which orchestrates registration, login, password changes and
// account deletion against the user repository and the token service.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/citykeeper/internal/common"
	"github.com/dmitrijs2005/citykeeper/internal/dbx"
	"github.com/dmitrijs2005/citykeeper/internal/server/auth"
	"github.com/dmitrijs2005/citykeeper/internal/server/config"
	"github.com/dmitrijs2005/citykeeper/internal/server/dto"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
	"github.com/dmitrijs2005/citykeeper/internal/server/repositories/repomanager"
)

// unknownIPAddress is stored when the caller's address cannot be determined.
const unknownIPAddress = "Unknown"

// AccountService provides authentication-related operations. Requests are
// independent of each other; the only shared state is the credential store,
// whose uniqueness constraints arbitrate concurrent registrations.
type AccountService struct {
	db                      *sql.DB
	repos                   repomanager.RepositoryManager
	tokens                  *auth.TokenService
	maxFailedAccessAttempts int
	lockoutDuration         time.Duration
}

// NewAccountService constructs an AccountService using repositories, the token
// service and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                      db,
		repos:                   m,
		tokens:                  tokens,
		maxFailedAccessAttempts: cfg.Lockout.MaxFailedAccessAttempts,
		lockoutDuration:         cfg.Lockout.Duration,
	}
}

// Register creates an account and signs the caller in. Validation failures and
// password-policy violations are reported together; a taken email yields
// common.ErrConflict whether detected by the pre-check or by the store's
// uniqueness constraint during a concurrent race.
func (s *AccountService) Register(ctx context.Context, req dto.RegisterRequest, ipAddress string) (*models.AuthenticationResponse, error) {
	violations := req.Validate()
	if req.Password != "" {
		violations = append(violations, dto.ValidatePasswordPolicy(req.Password)...)
	}
	if len(violations) > 0 {
		return nil, common.NewValidationError(violations...)
	}

	repo := s.repos.Users(s.db)

	if _, err := repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email address: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	if ipAddress == "" {
		ipAddress = unknownIPAddress
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		IPAddress:    ipAddress,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, fmt.Errorf("email address or phone number: %w", common.ErrConflict)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.tokens.CreateToken(user)
}

// Login verifies the credentials and mints a token. An unknown email yields
// common.ErrNotFound, a wrong password common.ErrInvalidCredentials; the two
// outcomes are distinguishable on purpose. Failed attempts count towards a
// lockout window.
func (s *AccountService) Login(ctx context.Context, req dto.LoginRequest) (*models.AuthenticationResponse, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, common.NewValidationError(violations...)
	}

	user, err := s.repos.Users(s.db).GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := s.verifyPassword(ctx, user, req.Password, true); err != nil {
		return nil, err
	}

	return s.tokens.CreateToken(user)
}

// ChangePassword verifies the old password and applies a new one that must
// satisfy the same complexity policy as registration. The stored hash is not
// touched unless every check passes.
func (s *AccountService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	if violations := req.Validate(); len(violations) > 0 {
		return common.NewValidationError(violations...)
	}

	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	if err := s.verifyPassword(ctx, user, req.OldPassword, false); err != nil {
		return err
	}

	if violations := dto.ValidatePasswordPolicy(req.NewPassword); len(violations) > 0 {
		return common.NewValidationError(violations...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrInternal
	}

	if err := repo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// DeleteAccount verifies the password and removes the account. Lookup,
// verification and deletion run in one transaction so a concurrent change
// cannot slip in between.
func (s *AccountService) DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error {
	if violations := req.Validate(); len(violations) > 0 {
		return common.NewValidationError(violations...)
	}

	return dbx.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		user, err := repo.GetByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return fmt.Errorf("error searching user: %w", err)
		}

		if err := s.verifyPassword(ctx, user, req.Password, false); err != nil {
			return err
		}

		if err := repo.Delete(ctx, user.ID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}

// IsEmailAvailableForRegister reports whether no account uses the email yet.
func (s *AccountService) IsEmailAvailableForRegister(ctx context.Context, email string) (bool, error) {
	_, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("error searching user: %w", err)
	}
	return false, nil
}

// IsEmailKnownForLogin reports whether an account with the email exists.
func (s *AccountService) IsEmailKnownForLogin(ctx context.Context, email string) (bool, error) {
	available, err := s.IsEmailAvailableForRegister(ctx, email)
	if err != nil {
		return false, err
	}
	return !available, nil
}

// IsPhoneAvailableForRegister reports whether no account uses the phone number.
func (s *AccountService) IsPhoneAvailableForRegister(ctx context.Context, phoneNumber string) (bool, error) {
	exists, err := s.repos.Users(s.db).PhoneNumberExists(ctx, phoneNumber)
	if err != nil {
		return false, fmt.Errorf("error searching user: %w", err)
	}
	return !exists, nil
}

// verifyPassword checks the candidate against the stored bcrypt hash.
// With lockoutOnFailure set, failed attempts increment a counter and lock the
// account for lockoutDuration once maxFailedAccessAttempts is reached; flows
// that already hold a secondary proof (or merely re-verify, like password
// change and account deletion) pass false and leave the counter alone.
// A locked account fails exactly like a wrong password.
func (s *AccountService) verifyPassword(ctx context.Context, user *models.User, password string, lockoutOnFailure bool) error {
	if user.LockoutUntil != nil && user.LockoutUntil.After(time.Now()) {
		return common.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
		if lockoutOnFailure && (user.AccessFailedCount > 0 || user.LockoutUntil != nil) {
			if err := s.repos.Users(s.db).UpdateAccessFailure(ctx, user.ID, 0, nil); err != nil {
				return fmt.Errorf("error resetting failed attempts: %w", err)
			}
		}
		return nil
	}

	if lockoutOnFailure {
		count := user.AccessFailedCount + 1
		var lockoutUntil *time.Time
		if count >= s.maxFailedAccessAttempts {
			until := time.Now().Add(s.lockoutDuration)
			lockoutUntil = &until
			count = 0
		}
		if err := s.repos.Users(s.db).UpdateAccessFailure(ctx, user.ID, count, lockoutUntil); err != nil {
			return fmt.Errorf("error recording failed attempt: %w", err)
		}
	}

	return common.ErrInvalidCredentials
}
