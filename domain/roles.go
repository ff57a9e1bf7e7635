package domain

// Role is the closed set of principal roles. Anything outside this set
// fails ParseRole and is rejected at the boundary.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTenant     Role = "tenant"
)

// ParseRole maps a raw string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleTenant:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// PrincipalStatus is the closed set of account states. Only active
// principals may authenticate.
type PrincipalStatus string

const (
	StatusActive    PrincipalStatus = "active"
	StatusInactive  PrincipalStatus = "inactive"
	StatusSuspended PrincipalStatus = "suspended"
)

// ParsePrincipalStatus maps a raw string onto the closed status set.
func ParsePrincipalStatus(s string) (PrincipalStatus, bool) {
	switch PrincipalStatus(s) {
	case StatusActive, StatusInactive, StatusSuspended:
		return PrincipalStatus(s), true
	}
	return "", false
}

// OTPPurpose distinguishes the flows an OTP record can belong to.
// Codes are never reused across purposes.
type OTPPurpose string

const (
	PurposeLogin  OTPPurpose = "login"
	PurposeResend OTPPurpose = "resend"
)

// ResourceType is the closed set of resource kinds the permission
// resolver knows about. Any other kind is denied for manager/tenant.
type ResourceType string

const (
	ResourceBuilding       ResourceType = "building"
	ResourceMaintenance    ResourceType = "maintenance"
	ResourceTenant         ResourceType = "tenant"
	ResourceTenancy        ResourceType = "tenancy"
	ResourceComplaint      ResourceType = "complaint"
	ResourcePayment        ResourceType = "payment"
	ResourceUserManagement ResourceType = "user_management"
)

// Operation names what the caller wants to do with a resource.
type Operation string

const (
	OpView   Operation = "view"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// AgreementStatus is the tenancy agreement lifecycle.
type AgreementStatus string

const (
	AgreementPending    AgreementStatus = "pending"
	AgreementExecuted   AgreementStatus = "executed"
	AgreementTerminated AgreementStatus = "terminated"
)

type BuildingStatus string

const (
	BuildingActive   BuildingStatus = "active"
	BuildingInactive BuildingStatus = "inactive"
)

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

type MaintenanceStatus string

const (
	MaintenanceRequested MaintenanceStatus = "requested"
	MaintenanceScheduled MaintenanceStatus = "scheduled"
	MaintenanceCompleted MaintenanceStatus = "completed"
	MaintenanceCancelled MaintenanceStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// BuildingScope is the resolved building access for list endpoints.
// It is an explicit sum over {unrestricted, restricted-to-set} so an
// empty set can never be confused with "no restriction".
type BuildingScope struct {
	unrestricted bool
	ids          []uint
}

// UnrestrictedScope grants access to every building (super_admin/admin).
func UnrestrictedScope() BuildingScope {
	return BuildingScope{unrestricted: true}
}

// RestrictedScope limits access to exactly the given building ids.
// An empty slice means access to nothing.
func RestrictedScope(ids []uint) BuildingScope {
	if ids == nil {
		ids = []uint{}
	}
	return BuildingScope{ids: ids}
}

// Unrestricted reports whether the scope places no building restriction.
func (s BuildingScope) Unrestricted() bool { return s.unrestricted }

// BuildingIDs returns the restriction set. Only meaningful when the
// scope is restricted.
func (s BuildingScope) BuildingIDs() []uint { return s.ids }

// Empty reports whether the scope is restricted to zero buildings.
// Callers must short-circuit to an empty result instead of querying.
func (s BuildingScope) Empty() bool { return !s.unrestricted && len(s.ids) == 0 }

// Contains reports whether the scope covers the given building.
func (s BuildingScope) Contains(buildingID uint) bool {
	if s.unrestricted {
		return true
	}
	for _, id := range s.ids {
		if id == buildingID {
			return true
		}
	}
	return false
}

// AccessScope is attached to a request by the authorization middleware.
// Downstream CRUD logic consults it instead of re-deriving access.
type AccessScope struct {
	PrincipalID  uint
	Email        string
	Role         Role
	ResourceType ResourceType
	Operation    Operation
	ResourceID   *uint
	Buildings    BuildingScope
}
