package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ventixe/accountsvc/domain"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgUserNotFound       = "User not found."
	msgInvalidToken       = "Invalid token."
	msgUnavailable        = "Service temporarily unavailable."
)

// AccountServiceImpl implements domain.AccountService. All failures from
// the repository, password service, or token service are converted into
// structured results at this boundary; none escape to the transport.
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	publisher   domain.EventPublisher
	policy      PasswordPolicy
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	publisher domain.EventPublisher,
	policy PasswordPolicy,
) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		publisher:   publisher,
		policy:      policy,
	}
}

// Register implements domain.AccountService
func (s *AccountServiceImpl) Register(ctx context.Context, email, password string) *domain.RegisterResult {
	var violations []string
	duplicate := false

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return &domain.RegisterResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}
	if existing != nil {
		duplicate = true
		violations = append(violations, fmt.Sprintf("Email '%s' is already taken.", email))
	}

	violations = append(violations, s.policy.Validate(password)...)

	if len(violations) > 0 {
		kind := domain.KindValidation
		if duplicate {
			kind = domain.KindDuplicateEmail
		}
		return &domain.RegisterResult{Result: domain.FailAll(kind, violations)}
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return &domain.RegisterResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	account := &domain.Account{
		Email:        email,
		Username:     email,
		PasswordHash: hashedPassword,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// The unique index catches the racing create the pre-check missed.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return &domain.RegisterResult{Result: domain.Fail(domain.KindDuplicateEmail,
				fmt.Sprintf("Email '%s' is already taken.", email))}
		}
		return &domain.RegisterResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	// Best-effort, at-most-once: a publish failure never fails the
	// registration its caller already observed as written.
	if err := s.publisher.Publish(ctx, domain.AccountCreatedEvent{AccountID: account.ID, Email: account.Email}); err != nil {
		log.Printf("account created event publish failed: account_id=%s error=%v", account.ID, err)
	}

	return &domain.RegisterResult{
		Result:    domain.Ok("Account created successfully."),
		AccountID: account.ID,
	}
}

// ValidateCredentials implements domain.AccountService. Unknown email and
// wrong password report the same message so callers cannot enumerate
// accounts.
func (s *AccountServiceImpl) ValidateCredentials(ctx context.Context, email, password string) *domain.ValidateCredentialsResult {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return &domain.ValidateCredentialsResult{Result: domain.Fail(domain.KindValidation,
			"Email and password must be provided.")}
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return &domain.ValidateCredentialsResult{Result: domain.Fail(domain.KindInvalidCredentials, msgInvalidCredentials)}
		}
		return &domain.ValidateCredentialsResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return &domain.ValidateCredentialsResult{Result: domain.Fail(domain.KindInvalidCredentials, msgInvalidCredentials)}
	}

	return &domain.ValidateCredentialsResult{
		Result:    domain.Ok("Login successful."),
		AccountID: account.ID,
	}
}

// GetAccounts implements domain.AccountService
func (s *AccountServiceImpl) GetAccounts(ctx context.Context) *domain.GetAccountsResult {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return &domain.GetAccountsResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	message := "Accounts retrieved successfully."
	if len(accounts) == 0 {
		message = "No accounts found."
	}

	views := make([]*domain.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}

	return &domain.GetAccountsResult{
		Result:   domain.Ok(message),
		Accounts: views,
	}
}

// GetAccountByID implements domain.AccountService
func (s *AccountServiceImpl) GetAccountByID(ctx context.Context, id string) *domain.GetAccountResult {
	account, res := s.find(ctx, id)
	if account == nil {
		return &domain.GetAccountResult{Result: res}
	}

	return &domain.GetAccountResult{
		Result:  domain.Ok("Account retrieved successfully."),
		Account: account.View(),
	}
}

// UpdatePhoneNumber implements domain.AccountService. Updating to the
// current number succeeds without touching the store.
func (s *AccountServiceImpl) UpdatePhoneNumber(ctx context.Context, id, phoneNumber string) *domain.Result {
	account, res := s.find(ctx, id)
	if account == nil {
		return &res
	}

	if account.PhoneNumber == phoneNumber {
		ok := domain.Ok("Phone number updated successfully.")
		return &ok
	}

	account.PhoneNumber = phoneNumber
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return s.updateFailure(err)
	}

	ok := domain.Ok("Phone number updated successfully.")
	return &ok
}

// DeleteAccountByID implements domain.AccountService
func (s *AccountServiceImpl) DeleteAccountByID(ctx context.Context, id string) *domain.Result {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			fail := domain.Fail(domain.KindNotFound, msgUserNotFound)
			return &fail
		}
		fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
		return &fail
	}

	ok := domain.Ok("Account deleted successfully.")
	return &ok
}

// ConfirmAccount implements domain.AccountService. Confirming an already
// confirmed account succeeds without redeeming the token.
func (s *AccountServiceImpl) ConfirmAccount(ctx context.Context, id, token string) *domain.Result {
	account, res := s.find(ctx, id)
	if account == nil {
		return &res
	}

	if account.EmailConfirmed {
		ok := domain.Ok("Account already confirmed.")
		return &ok
	}

	ok, err := s.tokenSvc.Redeem(ctx, id, domain.PurposeEmailConfirmation, "", token)
	if err != nil {
		fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
		return &fail
	}
	if !ok {
		fail := domain.Fail(domain.KindInvalidToken, msgInvalidToken)
		return &fail
	}

	account.EmailConfirmed = true
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return s.updateFailure(err)
	}

	confirmed := domain.Ok("Email confirmed successfully.")
	return &confirmed
}

// RequestEmailChange implements domain.AccountService. The email is not
// mutated here; it only changes once the issued token is redeemed, proving
// control of the new address.
func (s *AccountServiceImpl) RequestEmailChange(ctx context.Context, id, newEmail string) *domain.TokenResult {
	account, res := s.find(ctx, id)
	if account == nil {
		return &domain.TokenResult{Result: res}
	}

	if strings.EqualFold(account.Email, newEmail) {
		return &domain.TokenResult{Result: domain.Fail(domain.KindSameValue,
			"New email cannot be the same as the current email.")}
	}

	token, err := s.tokenSvc.Issue(ctx, id, domain.PurposeEmailChange, newEmail)
	if err != nil {
		return &domain.TokenResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	return &domain.TokenResult{
		Result: domain.Ok("Token generated successfully."),
		Token:  token,
	}
}

// ConfirmEmailChange implements domain.AccountService
func (s *AccountServiceImpl) ConfirmEmailChange(ctx context.Context, id, newEmail, token string) *domain.Result {
	account, res := s.find(ctx, id)
	if account == nil {
		return &res
	}

	ok, err := s.tokenSvc.Redeem(ctx, id, domain.PurposeEmailChange, newEmail, token)
	if err != nil {
		fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
		return &fail
	}
	if !ok {
		fail := domain.Fail(domain.KindInvalidToken, msgInvalidToken)
		return &fail
	}

	account.Email = newEmail
	account.Username = newEmail
	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			fail := domain.Fail(domain.KindDuplicateEmail,
				fmt.Sprintf("Email '%s' is already taken.", newEmail))
			return &fail
		}
		return s.updateFailure(err)
	}

	updated := domain.Ok("Email updated successfully.")
	return &updated
}

// RequestEmailConfirmationToken implements domain.AccountService
func (s *AccountServiceImpl) RequestEmailConfirmationToken(ctx context.Context, id string) *domain.TokenResult {
	return s.issueToken(ctx, id, domain.PurposeEmailConfirmation, "Email confirmation token generated.")
}

// RequestPasswordResetToken implements domain.AccountService
func (s *AccountServiceImpl) RequestPasswordResetToken(ctx context.Context, id string) *domain.TokenResult {
	return s.issueToken(ctx, id, domain.PurposePasswordReset, "Password reset token generated.")
}

// ResetPassword implements domain.AccountService. The policy check runs
// before redemption so a weak password does not consume the token.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, id, token, newPassword string) *domain.Result {
	account, res := s.find(ctx, id)
	if account == nil {
		return &res
	}

	if violations := s.policy.Validate(newPassword); len(violations) > 0 {
		fail := domain.FailAll(domain.KindValidation, violations)
		return &fail
	}

	ok, err := s.tokenSvc.Redeem(ctx, id, domain.PurposePasswordReset, "", token)
	if err != nil {
		fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
		return &fail
	}
	if !ok {
		fail := domain.Fail(domain.KindInvalidToken, msgInvalidToken)
		return &fail
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
		return &fail
	}

	account.PasswordHash = hashedPassword
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return s.updateFailure(err)
	}

	reset := domain.Ok("Password reset successfully.")
	return &reset
}

// find loads an account, mapping lookup failures to a result
func (s *AccountServiceImpl) find(ctx context.Context, id string) (*domain.Account, domain.Result) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.Fail(domain.KindNotFound, msgUserNotFound)
		}
		return nil, domain.Fail(domain.KindUnavailable, msgUnavailable)
	}
	return account, domain.Result{}
}

// issueToken issues a purpose-scoped token for an existing account
func (s *AccountServiceImpl) issueToken(ctx context.Context, id string, purpose domain.TokenPurpose, message string) *domain.TokenResult {
	account, res := s.find(ctx, id)
	if account == nil {
		return &domain.TokenResult{Result: res}
	}

	token, err := s.tokenSvc.Issue(ctx, id, purpose, "")
	if err != nil {
		return &domain.TokenResult{Result: domain.Fail(domain.KindUnavailable, msgUnavailable)}
	}

	return &domain.TokenResult{
		Result: domain.Ok(message),
		Token:  token,
	}
}

func (s *AccountServiceImpl) updateFailure(err error) *domain.Result {
	if errors.Is(err, domain.ErrAccountNotFound) {
		fail := domain.Fail(domain.KindNotFound, msgUserNotFound)
		return &fail
	}
	fail := domain.Fail(domain.KindUnavailable, msgUnavailable)
	return &fail
}
