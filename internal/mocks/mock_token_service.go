package mocks

import (
	"time"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	MintFunc    func(p *domain.Principal) (string, error)
	VerifyFunc  func(token string) (*domain.TokenClaims, error)
	RefreshFunc func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Mint issues a token for the principal
func (m *MockTokenService) Mint(p *domain.Principal) (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(p)
	}
	// Default behavior: fixed token
	return "mock_token", nil
}

// Verify validates a token and returns its claims
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: plausible claims
	now := time.Now()
	return &domain.TokenClaims{
		PrincipalID: 1,
		Email:       "user@example.com",
		Role:        domain.RoleTenant,
		IssuedAt:    now.Unix(),
		ExpiresAt:   now.Add(15 * time.Minute).Unix(),
	}, nil
}

// Refresh re-mints a token with a fresh expiry
func (m *MockTokenService) Refresh(token string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(token)
	}
	// Default behavior: fixed token
	return "mock_refreshed_token", nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
