package services

import "fmt"

// PasswordPolicy holds the password requirements the account service
// enforces on registration and password reset.
type PasswordPolicy struct {
	MinLength    int
	RequireDigit bool
}

// DefaultPasswordPolicy mirrors the deployment defaults: eight characters
// minimum with at least one digit.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8, RequireDigit: true}
}

// Validate returns one message per violated requirement, empty when the
// password satisfies the policy.
func (p PasswordPolicy) Validate(password string) []string {
	var violations []string

	if len(password) < p.MinLength {
		violations = append(violations, fmt.Sprintf("Passwords must be at least %d characters.", p.MinLength))
	}

	if p.RequireDigit && !containsDigit(password) {
		violations = append(violations, "Passwords must have at least one digit ('0'-'9').")
	}

	return violations
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
