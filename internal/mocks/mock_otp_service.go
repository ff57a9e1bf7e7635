package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, email string, resend bool) (int64, error)
	VerifyFunc func(ctx context.Context, email, code string) (*domain.Principal, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a fresh code
func (m *MockOTPService) Issue(ctx context.Context, email string, resend bool) (int64, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email, resend)
	}
	// Default behavior: ten minutes of validity
	return 600, nil
}

// Verify checks a submitted code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) (*domain.Principal, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: invalid code
	return nil, domain.ErrOTPInvalid
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
