package domain

import "strings"

// FailureKind classifies a failed operation so the transport layer can map
// it to a protocol status without parsing messages.
type FailureKind string

const (
	KindNone               FailureKind = ""
	KindNotFound           FailureKind = "not_found"
	KindDuplicateEmail     FailureKind = "duplicate_email"
	KindValidation         FailureKind = "validation"
	KindInvalidCredentials FailureKind = "invalid_credentials"
	KindInvalidToken       FailureKind = "invalid_token"
	KindSameValue          FailureKind = "same_value"
	KindUnavailable        FailureKind = "unavailable"
)

// Result is the common outcome of every account operation. Failures are
// reported here, never as errors across the service boundary.
type Result struct {
	Succeeded bool        `json:"succeeded"`
	Kind      FailureKind `json:"-"`
	Message   string      `json:"message"`
}

// Ok builds a successful result
func Ok(message string) Result {
	return Result{Succeeded: true, Message: message}
}

// Fail builds a failed result of the given kind
func Fail(kind FailureKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

// FailAll joins multiple validation messages into one failed result
func FailAll(kind FailureKind, messages []string) Result {
	return Result{Kind: kind, Message: strings.Join(messages, ", ")}
}

// RegisterResult carries the id of the newly created account
type RegisterResult struct {
	Result
	AccountID string `json:"account_id,omitempty"`
}

// ValidateCredentialsResult carries the id of the authenticated account
type ValidateCredentialsResult struct {
	Result
	AccountID string `json:"account_id,omitempty"`
}

// GetAccountsResult carries all account projections
type GetAccountsResult struct {
	Result
	Accounts []*AccountView `json:"accounts"`
}

// GetAccountResult carries a single account projection
type GetAccountResult struct {
	Result
	Account *AccountView `json:"account,omitempty"`
}

// TokenResult carries an issued security token
type TokenResult struct {
	Result
	Token string `json:"token,omitempty"`
}
