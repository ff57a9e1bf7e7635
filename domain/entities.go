package domain

import "time"

// Principal represents an authenticated identity in the system.
// Principals are provisioned externally and never deleted, only
// soft-deactivated via Status.
type Principal struct {
	ID            uint
	Email         string
	Role          Role
	Status        PrincipalStatus
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanAuthenticate reports whether the principal may start a login flow.
func (p *Principal) CanAuthenticate() bool {
	return p.Status == StatusActive
}

// OTPRecord is a persisted one-time code. At most one live (unused,
// unexpired) record exists per (email, purpose).
type OTPRecord struct {
	ID        string
	Email     string
	Code      string
	Purpose   OTPPurpose
	CreatedAt time.Time
	ExpiresAt time.Time
	Attempts  int
	Used      bool
}

// Expired reports whether the record is past its expiry at the given time.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// AuthResult represents a successful OTP verification outcome.
type AuthResult struct {
	Principal   *Principal
	AccessToken string
	ExpiresIn   int64
}

// TokenClaims are the claims carried by a bearer token. They reflect
// the principal's state at mint time only; tokens are stateless and
// never re-checked against the principal store.
type TokenClaims struct {
	PrincipalID uint   `json:"principal_id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// Building is an administratively owned property. ManagerID (nullable)
// establishes the one-to-many manager->buildings relation.
type Building struct {
	ID        uint
	Name      string
	Address   string
	Status    BuildingStatus
	ManagerID *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Floor, Room and Unit form the containment chain below a building.
// A tenancy references a unit; building resolution walks the chain.
type Floor struct {
	ID         uint
	BuildingID uint
	Level      int
}

type Room struct {
	ID      uint
	FloorID uint
	Number  string
}

type Unit struct {
	ID     uint
	RoomID uint
	Label  string
}

// Tenancy ties a tenant principal to a unit for a date window.
type Tenancy struct {
	ID              uint
	TenantUserID    uint
	UnitID          uint
	BuildingID      uint // resolved through the unit->room->floor chain
	StartDate       time.Time
	EndDate         time.Time
	AgreementStatus AgreementStatus
	MonthlyRent     int64 // minor currency units
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Active reports whether the tenancy grants access at the given time:
// the agreement is executed and the date falls inside the window.
func (t *Tenancy) Active(now time.Time) bool {
	return t.AgreementStatus == AgreementExecuted &&
		!now.Before(t.StartDate) && !now.After(t.EndDate)
}

// Complaint is owned by its filing tenant and scoped to one building.
type Complaint struct {
	ID           uint
	TenantUserID uint
	BuildingID   uint
	Subject      string
	Description  string
	Status       ComplaintStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MaintenanceRequest is owned by its requesting tenant and scoped to
// one building.
type MaintenanceRequest struct {
	ID           uint
	TenantUserID uint
	BuildingID   uint
	Category     string
	Description  string
	Status       MaintenanceStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Payment records money received against a tenancy.
type Payment struct {
	ID        uint
	Reference string // uuid, stable across retries
	TenancyID uint
	Amount    int64 // minor currency units
	Method    string
	Status    PaymentStatus
	DueDate   time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
}

// Announcement is a notice posted to a building's residents.
type Announcement struct {
	ID         uint
	BuildingID uint
	Title      string
	Body       string
	PostedBy   uint
	CreatedAt  time.Time
}

// DashboardStats aggregates counts for the caller's accessible buildings.
type DashboardStats struct {
	Buildings          int64 `json:"buildings"`
	ActiveTenancies    int64 `json:"active_tenancies"`
	OpenComplaints     int64 `json:"open_complaints"`
	OpenMaintenance    int64 `json:"open_maintenance"`
	PaymentsCollected  int64 `json:"payments_collected"`
	PaymentsOutstanding int64 `json:"payments_outstanding"`
}
