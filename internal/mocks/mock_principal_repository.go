package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockPrincipalRepository implements domain.PrincipalRepository interface for testing
type MockPrincipalRepository struct {
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.Principal, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Principal, error)
	ListFunc         func(ctx context.Context) ([]domain.Principal, error)
	UpdateRoleFunc   func(ctx context.Context, id uint, role domain.Role) error
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.PrincipalStatus) error
}

// NewMockPrincipalRepository creates a new MockPrincipalRepository with default behaviors
func NewMockPrincipalRepository() *MockPrincipalRepository {
	return &MockPrincipalRepository{}
}

// FindByEmail finds a principal by email
func (m *MockPrincipalRepository) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrPrincipalNotFound
}

// FindByID finds a principal by ID
func (m *MockPrincipalRepository) FindByID(ctx context.Context, id uint) (*domain.Principal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrPrincipalNotFound
}

// List returns all principals
func (m *MockPrincipalRepository) List(ctx context.Context) ([]domain.Principal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// UpdateRole updates a principal's role
func (m *MockPrincipalRepository) UpdateRole(ctx context.Context, id uint, role domain.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	// Default behavior: success
	return nil
}

// UpdateStatus updates a principal's status
func (m *MockPrincipalRepository) UpdateStatus(ctx context.Context, id uint, status domain.PrincipalStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PrincipalRepository = (*MockPrincipalRepository)(nil)
