package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RequestOTPFunc func(ctx context.Context, email string) (int64, error)
	ResendOTPFunc  func(ctx context.Context, email string) (int64, error)
	VerifyOTPFunc  func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	RefreshFunc    func(ctx context.Context, token string) (*domain.AuthResult, error)
	ProfileFunc    func(ctx context.Context, principalID uint) (*domain.Principal, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RequestOTP starts the login flow
func (m *MockAuthService) RequestOTP(ctx context.Context, email string) (int64, error) {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, email)
	}
	// Default behavior: ten minutes of validity
	return 600, nil
}

// ResendOTP re-issues a code on the resend path
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) (int64, error) {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	// Default behavior: ten minutes of validity
	return 600, nil
}

// VerifyOTP completes the login flow
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: invalid code
	return nil, domain.ErrOTPInvalid
}

// Refresh exchanges a valid token for a fresh one
func (m *MockAuthService) Refresh(ctx context.Context, token string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, token)
	}
	// Default behavior: reject
	return nil, domain.ErrTokenInvalid
}

// Profile returns the principal behind the token
func (m *MockAuthService) Profile(ctx context.Context, principalID uint) (*domain.Principal, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, principalID)
	}
	// Default behavior: not found
	return nil, domain.ErrPrincipalNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
