package mocks

import (
	"context"

	"github.com/ventixe/accountsvc/domain"
)

// MockEventPublisher implements domain.EventPublisher for testing
type MockEventPublisher struct {
	PublishFunc func(ctx context.Context, event domain.AccountCreatedEvent) error

	Published []domain.AccountCreatedEvent
}

// NewMockEventPublisher creates a new MockEventPublisher with default behaviors
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish publishes an account created event
func (m *MockEventPublisher) Publish(ctx context.Context, event domain.AccountCreatedEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.EventPublisher = (*MockEventPublisher)(nil)
