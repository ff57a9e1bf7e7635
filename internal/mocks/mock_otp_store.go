package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockOTPStore implements domain.OTPStore interface for testing
type MockOTPStore struct {
	DeleteLiveFunc        func(ctx context.Context, email string, purpose domain.OTPPurpose) error
	InsertFunc            func(ctx context.Context, rec *domain.OTPRecord) error
	FindLiveFunc          func(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTPRecord, error)
	IncrementAttemptsFunc func(ctx context.Context, email string, purpose domain.OTPPurpose) (int, error)
	MarkUsedFunc          func(ctx context.Context, email string, purpose domain.OTPPurpose) (bool, error)
}

// NewMockOTPStore creates a new MockOTPStore with default behaviors
func NewMockOTPStore() *MockOTPStore {
	return &MockOTPStore{}
}

// DeleteLive removes the live record for the key
func (m *MockOTPStore) DeleteLive(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	if m.DeleteLiveFunc != nil {
		return m.DeleteLiveFunc(ctx, email, purpose)
	}
	// Default behavior: success
	return nil
}

// Insert stores a fresh record
func (m *MockOTPStore) Insert(ctx context.Context, rec *domain.OTPRecord) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, rec)
	}
	// Default behavior: success
	return nil
}

// FindLive loads the record for the key
func (m *MockOTPStore) FindLive(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTPRecord, error) {
	if m.FindLiveFunc != nil {
		return m.FindLiveFunc(ctx, email, purpose)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// IncrementAttempts bumps the attempt counter
func (m *MockOTPStore) IncrementAttempts(ctx context.Context, email string, purpose domain.OTPPurpose) (int, error) {
	if m.IncrementAttemptsFunc != nil {
		return m.IncrementAttemptsFunc(ctx, email, purpose)
	}
	// Default behavior: first attempt
	return 1, nil
}

// MarkUsed claims the record for single use
func (m *MockOTPStore) MarkUsed(ctx context.Context, email string, purpose domain.OTPPurpose) (bool, error) {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, email, purpose)
	}
	// Default behavior: claim succeeds
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.OTPStore = (*MockOTPStore)(nil)
