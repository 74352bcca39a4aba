package domain

import "context"

// AccountRepository defines account data access operations. It is the sole
// authority for account existence and email uniqueness; uniqueness is
// enforced by the store itself, not by a check-then-write in callers.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*Account, error)
}

// PasswordService defines credential hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService issues and redeems single-use security tokens. A token is
// valid only for the exact (accountID, purpose, target) it was issued for.
type TokenService interface {
	Issue(ctx context.Context, accountID string, purpose TokenPurpose, target string) (string, error)
	Redeem(ctx context.Context, accountID string, purpose TokenPurpose, target, token string) (bool, error)
}

// EventPublisher publishes account lifecycle events. Delivery is
// best-effort; callers must not fail their operation on a publish error.
type EventPublisher interface {
	Publish(ctx context.Context, event AccountCreatedEvent) error
}

// AccountService defines the account lifecycle operations exposed over the
// gateway. Operations report failures through the result, never via panics
// or errors crossing this boundary.
type AccountService interface {
	Register(ctx context.Context, email, password string) *RegisterResult
	ValidateCredentials(ctx context.Context, email, password string) *ValidateCredentialsResult
	GetAccounts(ctx context.Context) *GetAccountsResult
	GetAccountByID(ctx context.Context, id string) *GetAccountResult
	UpdatePhoneNumber(ctx context.Context, id, phoneNumber string) *Result
	DeleteAccountByID(ctx context.Context, id string) *Result
	ConfirmAccount(ctx context.Context, id, token string) *Result
	RequestEmailChange(ctx context.Context, id, newEmail string) *TokenResult
	ConfirmEmailChange(ctx context.Context, id, newEmail, token string) *Result
	RequestEmailConfirmationToken(ctx context.Context, id string) *TokenResult
	RequestPasswordResetToken(ctx context.Context, id string) *TokenResult
	ResetPassword(ctx context.Context, id, token, newPassword string) *Result
}
