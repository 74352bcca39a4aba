package mocks

import (
	"context"
	"fmt"

	"github.com/ventixe/accountsvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(ctx context.Context, accountID string, purpose domain.TokenPurpose, target string) (string, error)
	RedeemFunc func(ctx context.Context, accountID string, purpose domain.TokenPurpose, target, token string) (bool, error)

	RedeemCalls int
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a security token
func (m *MockTokenService) Issue(ctx context.Context, accountID string, purpose domain.TokenPurpose, target string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, accountID, purpose, target)
	}
	// Default behavior: deterministic token encoding its binding
	return fmt.Sprintf("token_%s_%s_%s", accountID, purpose, target), nil
}

// Redeem redeems a security token
func (m *MockTokenService) Redeem(ctx context.Context, accountID string, purpose domain.TokenPurpose, target, token string) (bool, error) {
	m.RedeemCalls++
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, accountID, purpose, target, token)
	}
	// Default behavior: valid only for the exact binding it encodes
	return token == fmt.Sprintf("token_%s_%s_%s", accountID, purpose, target), nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
