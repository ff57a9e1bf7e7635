package domain

import (
	"context"
	"time"
)

// PrincipalRepository defines principal data access operations.
// Principals are provisioned externally; this layer only reads and
// mutates role/status.
type PrincipalRepository interface {
	FindByEmail(ctx context.Context, email string) (*Principal, error)
	FindByID(ctx context.Context, id uint) (*Principal, error)
	List(ctx context.Context) ([]Principal, error)
	UpdateRole(ctx context.Context, id uint, role Role) error
	UpdateStatus(ctx context.Context, id uint, status PrincipalStatus) error
}

// OTPStore persists one-time codes. IncrementAttempts and MarkUsed are
// atomic in the store so concurrent verifies cannot both slip past the
// attempt cap or the single-use flag.
type OTPStore interface {
	DeleteLive(ctx context.Context, email string, purpose OTPPurpose) error
	Insert(ctx context.Context, rec *OTPRecord) error
	FindLive(ctx context.Context, email string, purpose OTPPurpose) (*OTPRecord, error)
	IncrementAttempts(ctx context.Context, email string, purpose OTPPurpose) (int, error)
	MarkUsed(ctx context.Context, email string, purpose OTPPurpose) (bool, error)
}

// OTPService implements the one-time code lifecycle.
type OTPService interface {
	// Issue generates a fresh code for the login flow, superseding any
	// live record, and hands it to the delivery collaborator. Returns
	// the code's remaining validity in seconds. resend selects the
	// resend path, which enforces the cooldown window.
	Issue(ctx context.Context, email string, resend bool) (int64, error)
	// Verify checks a submitted code and returns the matching principal
	// on success. The record is single-use.
	Verify(ctx context.Context, email, code string) (*Principal, error)
}

// TokenService issues and verifies signed bearer tokens. Verification
// is pure computation and never touches storage.
type TokenService interface {
	Mint(p *Principal) (string, error)
	Verify(token string) (*TokenClaims, error)
	// Refresh re-mints the claims unchanged with a fresh expiry. It does
	// not re-check current principal state.
	Refresh(token string) (string, error)
}

// DeliveryService is the out-of-band code delivery collaborator.
// Delivery failure must not invalidate the stored code.
type DeliveryService interface {
	Send(destination, code string, purpose OTPPurpose) error
}

// AuthService ties the OTP flow to token issuance.
type AuthService interface {
	RequestOTP(ctx context.Context, email string) (int64, error)
	ResendOTP(ctx context.Context, email string) (int64, error)
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	Refresh(ctx context.Context, token string) (*AuthResult, error)
	Profile(ctx context.Context, principalID uint) (*Principal, error)
}

// AccessService is the resource-scoped authorization engine: role
// blanket policy, per-resource permission predicates, and list-scope
// resolution.
type AccessService interface {
	// Permitted answers whether the principal may perform the operation
	// on the specific resource. Unknown resource types deny for
	// manager/tenant (fail closed).
	Permitted(ctx context.Context, claims *TokenClaims, rt ResourceType, resourceID uint, op Operation) (bool, error)
	// AccessibleBuildings resolves the caller's building scope for list
	// and aggregate endpoints.
	AccessibleBuildings(ctx context.Context, claims *TokenClaims) (BuildingScope, error)
}

// PolicyService defines endpoint-level authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the service layer
// depends on.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}

// BuildingRepository defines building data access operations.
type BuildingRepository interface {
	Create(ctx context.Context, b *Building) error
	FindByID(ctx context.Context, id uint) (*Building, error)
	Update(ctx context.Context, b *Building) error
	AssignManager(ctx context.Context, id uint, managerID *uint) error
	List(ctx context.Context, scope BuildingScope) ([]Building, error)
	Count(ctx context.Context, scope BuildingScope) (int64, error)
	// IsActivelyManagedBy reports whether the building is active and
	// managed by the given principal.
	IsActivelyManagedBy(ctx context.Context, buildingID, managerID uint) (bool, error)
	ManagerID(ctx context.Context, buildingID uint) (*uint, error)
	IDsManagedBy(ctx context.Context, managerID uint) ([]uint, error)
}

// TenancyRepository defines tenancy data access, including the
// unit->room->floor->building chain resolution.
type TenancyRepository interface {
	Create(ctx context.Context, t *Tenancy) error
	FindByID(ctx context.Context, id uint) (*Tenancy, error)
	List(ctx context.Context, scope BuildingScope) ([]Tenancy, error)
	Execute(ctx context.Context, id uint) error
	Terminate(ctx context.Context, id uint, endDate time.Time) error
	// ActiveBuildingIDs returns buildings reachable through the tenant's
	// currently active tenancies.
	ActiveBuildingIDs(ctx context.Context, tenantUserID uint, now time.Time) ([]uint, error)
	HasActiveInBuilding(ctx context.Context, tenantUserID, buildingID uint, now time.Time) (bool, error)
	// ExistsExecutedManagedBy reports whether the tenant holds an
	// executed tenancy in any building managed by the given manager.
	ExistsExecutedManagedBy(ctx context.Context, tenantUserID, managerID uint) (bool, error)
	CountActive(ctx context.Context, scope BuildingScope, now time.Time) (int64, error)
}

// ComplaintRepository defines complaint data access operations.
type ComplaintRepository interface {
	Create(ctx context.Context, c *Complaint) error
	FindByID(ctx context.Context, id uint) (*Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status ComplaintStatus) error
	List(ctx context.Context, scope BuildingScope) ([]Complaint, error)
	CountOpen(ctx context.Context, scope BuildingScope) (int64, error)
}

// MaintenanceRepository defines maintenance request data access operations.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *MaintenanceRequest) error
	FindByID(ctx context.Context, id uint) (*MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id uint, status MaintenanceStatus) error
	List(ctx context.Context, scope BuildingScope) ([]MaintenanceRequest, error)
	CountOpen(ctx context.Context, scope BuildingScope) (int64, error)
}

// PaymentRepository defines payment data access operations. Payments
// are scoped to buildings through their tenancy's unit chain.
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
	List(ctx context.Context, scope BuildingScope) ([]Payment, error)
	MarkPaid(ctx context.Context, id uint, paidAt time.Time) error
	TotalByStatus(ctx context.Context, scope BuildingScope, status PaymentStatus) (int64, error)
}

// AnnouncementRepository defines announcement data access operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	List(ctx context.Context, scope BuildingScope) ([]Announcement, error)
}
