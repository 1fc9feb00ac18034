package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PhoneNumber:     "5551234567",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	}
}

func TestRegisterRequest_Valid(t *testing.T) {
	r := validRegisterRequest()
	assert.Empty(t, r.Validate())
}

func TestRegisterRequest_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		want   string
	}{
		{"empty first name", func(r *RegisterRequest) { r.FirstName = "" }, "first name can't be null or empty"},
		{"long first name", func(r *RegisterRequest) { r.FirstName = strings.Repeat("a", 51) }, "first name can't be more than 50 characters"},
		{"empty last name", func(r *RegisterRequest) { r.LastName = "" }, "last name can't be null or empty"},
		{"empty email", func(r *RegisterRequest) { r.Email = "" }, "email address can't be null or empty"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email address is not in the correct format"},
		{"empty phone", func(r *RegisterRequest) { r.PhoneNumber = "" }, "phone number can't be null or empty"},
		{"alpha phone", func(r *RegisterRequest) { r.PhoneNumber = "555abc" }, "phone number is not in the correct format"},
		{"long phone", func(r *RegisterRequest) { r.PhoneNumber = "555123456789" }, "phone number can't be more than 11 digits"},
		{"empty password", func(r *RegisterRequest) { r.Password = "" }, "password can't be null or empty"},
		{"mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "Different1!" }, "password and its confirmation are not the same"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegisterRequest()
			tc.mutate(&r)
			assert.Contains(t, r.Validate(), tc.want)
		})
	}
}

func TestRegisterRequest_CollectsEveryViolation(t *testing.T) {
	r := RegisterRequest{}
	violations := r.Validate()
	assert.GreaterOrEqual(t, len(violations), 5, "empty request must report all missing fields, got %v", violations)
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.Empty(t, (&LoginRequest{Email: "jane@example.com", Password: "pw"}).Validate())
	assert.Contains(t, (&LoginRequest{Password: "pw"}).Validate(), "email address can't be null or empty")
	assert.Contains(t, (&LoginRequest{Email: "jane@example.com"}).Validate(), "password can't be null or empty")
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	ok := ChangePasswordRequest{Email: "jane@example.com", OldPassword: "a", NewPassword: "b"}
	assert.Empty(t, ok.Validate())

	missing := ChangePasswordRequest{Email: "jane@example.com"}
	violations := missing.Validate()
	assert.Contains(t, violations, "password can't be null or empty")
	assert.Contains(t, violations, "new password can't be null or empty")
}

func TestDeleteAccountRequest_Validate(t *testing.T) {
	assert.Empty(t, (&DeleteAccountRequest{Email: "jane@example.com", Password: "pw"}).Validate())
	assert.NotEmpty(t, (&DeleteAccountRequest{}).Validate())
}

func TestCityRequest_Validate(t *testing.T) {
	assert.Empty(t, (&CityRequest{CityName: "Riga"}).Validate())
	assert.Contains(t, (&CityRequest{}).Validate(), "city name can't be null or empty")
	assert.Contains(t, (&CityRequest{CityName: strings.Repeat("x", 41)}).Validate(), "city name can't be more than 40 characters")
}
