// Package dto declares the request bodies of the HTTP API. Each type carries
// an explicit Validate method returning every violation found, invoked at the
// start of a flow before any store access.
package dto

import "regexp"

const maxNameLength = 50
const maxPhoneLength = 11

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]*$`)
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the request shape and returns all violations.
func (r *RegisterRequest) Validate() []string {
	var violations []string

	if r.FirstName == "" {
		violations = append(violations, "first name can't be null or empty")
	} else if len(r.FirstName) > maxNameLength {
		violations = append(violations, "first name can't be more than 50 characters")
	}

	if r.LastName == "" {
		violations = append(violations, "last name can't be null or empty")
	} else if len(r.LastName) > maxNameLength {
		violations = append(violations, "last name can't be more than 50 characters")
	}

	violations = append(violations, validateEmail(r.Email)...)

	switch {
	case r.PhoneNumber == "":
		violations = append(violations, "phone number can't be null or empty")
	case !phonePattern.MatchString(r.PhoneNumber):
		violations = append(violations, "phone number is not in the correct format")
	case len(r.PhoneNumber) > maxPhoneLength:
		violations = append(violations, "phone number can't be more than 11 digits")
	}

	if r.Password == "" {
		violations = append(violations, "password can't be null or empty")
	}
	if r.ConfirmPassword == "" {
		violations = append(violations, "confirm password can't be null or empty")
	} else if r.Password != r.ConfirmPassword {
		violations = append(violations, "password and its confirmation are not the same")
	}

	return violations
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request shape and returns all violations.
func (r *LoginRequest) Validate() []string {
	var violations []string
	violations = append(violations, validateEmail(r.Email)...)
	if r.Password == "" {
		violations = append(violations, "password can't be null or empty")
	}
	return violations
}

// ChangePasswordRequest is the body of PUT /change-password.
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Validate checks the request shape and returns all violations.
func (r *ChangePasswordRequest) Validate() []string {
	var violations []string
	violations = append(violations, validateEmail(r.Email)...)
	if r.OldPassword == "" {
		violations = append(violations, "password can't be null or empty")
	}
	if r.NewPassword == "" {
		violations = append(violations, "new password can't be null or empty")
	}
	return violations
}

// DeleteAccountRequest is the body of DELETE /delete-account.
type DeleteAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request shape and returns all violations.
func (r *DeleteAccountRequest) Validate() []string {
	var violations []string
	violations = append(violations, validateEmail(r.Email)...)
	if r.Password == "" {
		violations = append(violations, "password can't be null or empty")
	}
	return violations
}

func validateEmail(email string) []string {
	if email == "" {
		return []string{"email address can't be null or empty"}
	}
	if !emailPattern.MatchString(email) {
		return []string{"email address is not in the correct format"}
	}
	return nil
}
