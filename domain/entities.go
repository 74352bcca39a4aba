package domain

import "time"

// Account represents a user account owned by this service
type Account struct {
	ID             string
	Email          string
	Username       string
	PasswordHash   string `gorm:"column:password"`
	PhoneNumber    string
	EmailConfirmed bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountView is the outward projection of an account, without credentials
type AccountView struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// View returns the outward projection of the account
func (a *Account) View() *AccountView {
	return &AccountView{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		PhoneNumber:    a.PhoneNumber,
		EmailConfirmed: a.EmailConfirmed,
	}
}

// TokenPurpose restricts where a security token may be redeemed
type TokenPurpose string

const (
	PurposeEmailConfirmation TokenPurpose = "email_confirmation"
	PurposeEmailChange       TokenPurpose = "email_change"
	PurposePasswordReset     TokenPurpose = "password_reset"
)

// AccountCreatedEvent is the payload published after a successful registration
type AccountCreatedEvent struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}
