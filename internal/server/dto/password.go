package dto

import "unicode"

// Password complexity policy, applied on registration and on the new password
// of a change-password request.
const (
	minPasswordLength   = 8
	minUniquePasswdRune = 4
)

// ValidatePasswordPolicy returns every policy violation of the candidate
// password: minimum length 8, at least one uppercase, lowercase, digit and
// non-alphanumeric character, and at least 4 distinct characters.
func ValidatePasswordPolicy(password string) []string {
	var violations []string

	runes := []rune(password)
	if len(runes) < minPasswordLength {
		violations = append(violations, "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	unique := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		unique[r] = struct{}{}
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		violations = append(violations, "password must contain an uppercase character")
	}
	if !hasLower {
		violations = append(violations, "password must contain a lowercase character")
	}
	if !hasDigit {
		violations = append(violations, "password must contain a digit")
	}
	if !hasSpecial {
		violations = append(violations, "password must contain a non-alphanumeric character")
	}
	if len(unique) < minUniquePasswdRune {
		violations = append(violations, "password must use at least 4 different characters")
	}

	return violations
}
