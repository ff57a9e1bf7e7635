package mocks

import (
	"context"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MockAccessService implements domain.AccessService interface for testing
type MockAccessService struct {
	PermittedFunc           func(ctx context.Context, claims *domain.TokenClaims, rt domain.ResourceType, resourceID uint, op domain.Operation) (bool, error)
	AccessibleBuildingsFunc func(ctx context.Context, claims *domain.TokenClaims) (domain.BuildingScope, error)
}

// NewMockAccessService creates a new MockAccessService with default behaviors
func NewMockAccessService() *MockAccessService {
	return &MockAccessService{}
}

// Permitted answers a per-resource authorization question
func (m *MockAccessService) Permitted(ctx context.Context, claims *domain.TokenClaims, rt domain.ResourceType, resourceID uint, op domain.Operation) (bool, error) {
	if m.PermittedFunc != nil {
		return m.PermittedFunc(ctx, claims, rt, resourceID, op)
	}
	// Default behavior: allow
	return true, nil
}

// AccessibleBuildings resolves the caller's list scope
func (m *MockAccessService) AccessibleBuildings(ctx context.Context, claims *domain.TokenClaims) (domain.BuildingScope, error) {
	if m.AccessibleBuildingsFunc != nil {
		return m.AccessibleBuildingsFunc(ctx, claims)
	}
	// Default behavior: unrestricted
	return domain.UnrestrictedScope(), nil
}

// Compile-time interface compliance verification
var _ domain.AccessService = (*MockAccessService)(nil)
