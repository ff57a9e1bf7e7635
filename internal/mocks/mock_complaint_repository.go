package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockComplaintRepository implements domain.ComplaintRepository interface for testing
type MockComplaintRepository struct {
	CreateFunc       func(ctx context.Context, c *domain.Complaint) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Complaint, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.ComplaintStatus) error
	ListFunc         func(ctx context.Context, scope domain.BuildingScope) ([]domain.Complaint, error)
	CountOpenFunc    func(ctx context.Context, scope domain.BuildingScope) (int64, error)
}

// NewMockComplaintRepository creates a new MockComplaintRepository with default behaviors
func NewMockComplaintRepository() *MockComplaintRepository {
	return &MockComplaintRepository{}
}

// Create files a complaint
func (m *MockComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	// Default behavior: assign an id
	c.ID = 1
	c.Status = domain.ComplaintOpen
	return nil
}

// FindByID finds a complaint by ID
func (m *MockComplaintRepository) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// UpdateStatus advances a complaint's lifecycle
func (m *MockComplaintRepository) UpdateStatus(ctx context.Context, id uint, status domain.ComplaintStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// List returns complaints within the scope
func (m *MockComplaintRepository) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
	}
	// Default behavior: empty
	return []domain.Complaint{}, nil
}

// CountOpen counts unresolved complaints within the scope
func (m *MockComplaintRepository) CountOpen(ctx context.Context, scope domain.BuildingScope) (int64, error) {
	if m.CountOpenFunc != nil {
		return m.CountOpenFunc(ctx, scope)
	}
	// Default behavior: none
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.ComplaintRepository = (*MockComplaintRepository)(nil)
