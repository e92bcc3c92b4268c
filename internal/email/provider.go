package email

import (
	"careswipe_backend/internal/logger"
)

// Provider sends transactional email. The match notifier is its only
// in-core consumer; delivery failures are logged, never propagated into the
// swipe/match flow.
type Provider interface {
	Send(msg *Message) error
}

// MockProvider logs instead of sending. Used in development and tests.
type MockProvider struct{}

func NewMockProvider() Provider {
	return &MockProvider{}
}

func (p *MockProvider) Send(msg *Message) error {
	logger.Info("mock email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
