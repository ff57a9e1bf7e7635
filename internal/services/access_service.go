package services

import (
	"context"
	"time"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// AccessServiceImpl implements domain.AccessService: the blanket role
// policy, the per-resource permission resolver, and list-scope
// resolution. Every path not explicitly modeled denies (fail closed).
type AccessServiceImpl struct {
	buildings   domain.BuildingRepository
	tenancies   domain.TenancyRepository
	complaints  domain.ComplaintRepository
	maintenance domain.MaintenanceRepository
	payments    domain.PaymentRepository
	now         func() time.Time
}

// NewAccessService creates a new access service
func NewAccessService(
	buildings domain.BuildingRepository,
	tenancies domain.TenancyRepository,
	complaints domain.ComplaintRepository,
	maintenance domain.MaintenanceRepository,
	payments domain.PaymentRepository,
) domain.AccessService {
	return &AccessServiceImpl{
		buildings:   buildings,
		tenancies:   tenancies,
		complaints:  complaints,
		maintenance: maintenance,
		payments:    payments,
		now:         time.Now,
	}
}

// blanketAllow is the role lattice evaluated before any resource check.
// decided=false means the role falls through to the resolver.
func blanketAllow(role domain.Role, rt domain.ResourceType) (allowed, decided bool) {
	switch role {
	case domain.RoleSuperAdmin:
		return true, true
	case domain.RoleAdmin:
		if rt == domain.ResourceUserManagement {
			return false, false
		}
		return true, true
	default:
		return false, false
	}
}

// Permitted implements domain.AccessService
func (s *AccessServiceImpl) Permitted(ctx context.Context, claims *domain.TokenClaims, rt domain.ResourceType, resourceID uint, op domain.Operation) (bool, error) {
	if allowed, decided := blanketAllow(claims.Role, rt); decided {
		return allowed, nil
	}

	switch claims.Role {
	case domain.RoleManager:
		return s.managerPermitted(ctx, claims.PrincipalID, rt, resourceID)
	case domain.RoleTenant:
		return s.tenantPermitted(ctx, claims.PrincipalID, rt, resourceID)
	default:
		// admin falling through the user_management exception lands
		// here, as does any unknown role
		return false, nil
	}
}

func (s *AccessServiceImpl) managerPermitted(ctx context.Context, principalID uint, rt domain.ResourceType, resourceID uint) (bool, error) {
	switch rt {
	case domain.ResourceBuilding:
		return s.buildings.IsActivelyManagedBy(ctx, resourceID, principalID)

	case domain.ResourceMaintenance:
		req, err := s.maintenance.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return s.managesBuilding(ctx, req.BuildingID, principalID)

	// The tenant kind is keyed by tenant user id, the tenancy kind by
	// tenancy record id. Conflating the two would let ids from one
	// space unlock resources in the other.
	case domain.ResourceTenant:
		return s.tenancies.ExistsExecutedManagedBy(ctx, resourceID, principalID)

	case domain.ResourceTenancy:
		tenancy, err := s.tenancies.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return s.managesBuilding(ctx, tenancy.BuildingID, principalID)

	case domain.ResourceComplaint:
		complaint, err := s.complaints.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return s.managesBuilding(ctx, complaint.BuildingID, principalID)

	case domain.ResourcePayment:
		buildingID, err := s.paymentBuilding(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return s.managesBuilding(ctx, buildingID, principalID)

	default:
		return false, nil
	}
}

func (s *AccessServiceImpl) tenantPermitted(ctx context.Context, principalID uint, rt domain.ResourceType, resourceID uint) (bool, error) {
	switch rt {
	case domain.ResourceBuilding:
		return s.tenancies.HasActiveInBuilding(ctx, principalID, resourceID, s.now())

	case domain.ResourceMaintenance:
		req, err := s.maintenance.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return req.TenantUserID == principalID, nil

	case domain.ResourceTenant:
		return principalID == resourceID, nil

	case domain.ResourceTenancy:
		tenancy, err := s.tenancies.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return tenancy.TenantUserID == principalID, nil

	case domain.ResourceComplaint:
		complaint, err := s.complaints.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		return complaint.TenantUserID == principalID, nil

	case domain.ResourcePayment:
		payment, err := s.payments.FindByID(ctx, resourceID)
		if err != nil {
			return false, err
		}
		tenancy, err := s.tenancies.FindByID(ctx, payment.TenancyID)
		if err != nil {
			return false, err
		}
		return tenancy.TenantUserID == principalID, nil

	default:
		return false, nil
	}
}

func (s *AccessServiceImpl) managesBuilding(ctx context.Context, buildingID, principalID uint) (bool, error) {
	managerID, err := s.buildings.ManagerID(ctx, buildingID)
	if err != nil {
		return false, err
	}
	return managerID != nil && *managerID == principalID, nil
}

// paymentBuilding resolves a payment to its building through the
// tenancy's unit chain.
func (s *AccessServiceImpl) paymentBuilding(ctx context.Context, paymentID uint) (uint, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return 0, err
	}
	tenancy, err := s.tenancies.FindByID(ctx, payment.TenancyID)
	if err != nil {
		return 0, err
	}
	return tenancy.BuildingID, nil
}

// AccessibleBuildings implements domain.AccessService. A manager or
// tenant with nothing assigned resolves to an empty restricted scope,
// never to unrestricted.
func (s *AccessServiceImpl) AccessibleBuildings(ctx context.Context, claims *domain.TokenClaims) (domain.BuildingScope, error) {
	switch claims.Role {
	case domain.RoleSuperAdmin, domain.RoleAdmin:
		return domain.UnrestrictedScope(), nil

	case domain.RoleManager:
		ids, err := s.buildings.IDsManagedBy(ctx, claims.PrincipalID)
		if err != nil {
			return domain.BuildingScope{}, err
		}
		return domain.RestrictedScope(ids), nil

	case domain.RoleTenant:
		ids, err := s.tenancies.ActiveBuildingIDs(ctx, claims.PrincipalID, s.now())
		if err != nil {
			return domain.BuildingScope{}, err
		}
		return domain.RestrictedScope(ids), nil

	default:
		return domain.RestrictedScope(nil), nil
	}
}
