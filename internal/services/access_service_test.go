package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/infrastructure/repositories"
)

// accessFixture is a small world with two managed buildings and one
// tenant, backed by real repositories over an in-memory database.
type accessFixture struct {
	svc *AccessServiceImpl
	db  *gorm.DB
	now time.Time

	b1, b2      uint // b1 managed by manager 7, b2 by manager 8
	b3          uint // inactive building managed by manager 7
	tenancyB1   uint // tenant 5, executed, inside 2025
	tenancyB2   uint // tenant 6, executed, inside 2025
	complaintB1 uint // filed by tenant 5 in b1
	complaintB2 uint // filed by tenant 6 in b2
	maintB1     uint // requested by tenant 5 in b1
	maintB2     uint // requested by tenant 6 in b2
	paymentB1   uint // against the b1 tenancy
	paymentB2   uint // against the b2 tenancy
}

const (
	managerOne = 7
	managerTwo = 8
	tenantOne  = 5
	tenantTwo  = 6
)

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&repositories.DBBuilding{},
		&repositories.DBFloor{},
		&repositories.DBRoom{},
		&repositories.DBUnit{},
		&repositories.DBTenancy{},
		&repositories.DBComplaint{},
		&repositories.DBMaintenanceRequest{},
		&repositories.DBPayment{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	f := &accessFixture{
		db:  db,
		now: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	f.b1 = f.addBuilding(t, "B1", ptr(uint(managerOne)), domain.BuildingActive)
	f.b2 = f.addBuilding(t, "B2", ptr(uint(managerTwo)), domain.BuildingActive)
	f.b3 = f.addBuilding(t, "B3", ptr(uint(managerOne)), domain.BuildingInactive)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	f.tenancyB1 = f.addTenancy(t, f.b1, tenantOne, domain.AgreementExecuted, start, end)
	f.tenancyB2 = f.addTenancy(t, f.b2, tenantTwo, domain.AgreementExecuted, start, end)

	f.complaintB1 = f.addComplaint(t, f.b1, tenantOne)
	f.complaintB2 = f.addComplaint(t, f.b2, tenantTwo)
	f.maintB1 = f.addMaintenance(t, f.b1, tenantOne)
	f.maintB2 = f.addMaintenance(t, f.b2, tenantTwo)
	f.paymentB1 = f.addPayment(t, f.tenancyB1)
	f.paymentB2 = f.addPayment(t, f.tenancyB2)

	f.svc = &AccessServiceImpl{
		buildings:   repositories.NewBuildingRepository(db),
		tenancies:   repositories.NewTenancyRepository(db),
		complaints:  repositories.NewComplaintRepository(db),
		maintenance: repositories.NewMaintenanceRepository(db),
		payments:    repositories.NewPaymentRepository(db),
		now:         func() time.Time { return f.now },
	}
	return f
}

func ptr[T any](v T) *T { return &v }

func (f *accessFixture) addBuilding(t *testing.T, name string, managerID *uint, status domain.BuildingStatus) uint {
	t.Helper()
	b := &repositories.DBBuilding{Name: name, Status: string(status), ManagerID: managerID}
	if err := f.db.Create(b).Error; err != nil {
		t.Fatalf("failed to seed building: %v", err)
	}
	return b.ID
}

func (f *accessFixture) addTenancy(t *testing.T, buildingID, tenantUserID uint, status domain.AgreementStatus, start, end time.Time) uint {
	t.Helper()
	floor := &repositories.DBFloor{BuildingID: buildingID, Level: 1}
	if err := f.db.Create(floor).Error; err != nil {
		t.Fatalf("failed to seed floor: %v", err)
	}
	room := &repositories.DBRoom{FloorID: floor.ID, Number: "101"}
	if err := f.db.Create(room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	unit := &repositories.DBUnit{RoomID: room.ID, Label: "A"}
	if err := f.db.Create(unit).Error; err != nil {
		t.Fatalf("failed to seed unit: %v", err)
	}
	tn := &repositories.DBTenancy{
		TenantUserID:    tenantUserID,
		UnitID:          unit.ID,
		StartDate:       start,
		EndDate:         end,
		AgreementStatus: string(status),
	}
	if err := f.db.Create(tn).Error; err != nil {
		t.Fatalf("failed to seed tenancy: %v", err)
	}
	return tn.ID
}

func (f *accessFixture) addComplaint(t *testing.T, buildingID, tenantUserID uint) uint {
	t.Helper()
	c := &repositories.DBComplaint{TenantUserID: tenantUserID, BuildingID: buildingID, Subject: "noise", Status: string(domain.ComplaintOpen)}
	if err := f.db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed complaint: %v", err)
	}
	return c.ID
}

func (f *accessFixture) addMaintenance(t *testing.T, buildingID, tenantUserID uint) uint {
	t.Helper()
	m := &repositories.DBMaintenanceRequest{TenantUserID: tenantUserID, BuildingID: buildingID, Category: "plumbing", Status: string(domain.MaintenanceRequested)}
	if err := f.db.Create(m).Error; err != nil {
		t.Fatalf("failed to seed maintenance request: %v", err)
	}
	return m.ID
}

func (f *accessFixture) addPayment(t *testing.T, tenancyID uint) uint {
	t.Helper()
	p := &repositories.DBPayment{
		Reference: fmt.Sprintf("ref-%d", tenancyID),
		TenancyID: tenancyID,
		Amount:    500,
		Method:    "transfer",
		Status:    string(domain.PaymentPending),
		DueDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := f.db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}
	return p.ID
}

func claimsFor(id uint, role domain.Role) *domain.TokenClaims {
	return &domain.TokenClaims{PrincipalID: id, Email: "p@example.com", Role: role}
}

func TestAccessService_SuperAdminBlanketAllow(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(1, domain.RoleSuperAdmin)

	for _, rt := range []domain.ResourceType{
		domain.ResourceBuilding,
		domain.ResourceMaintenance,
		domain.ResourceTenant,
		domain.ResourceComplaint,
		domain.ResourceUserManagement,
	} {
		ok, err := f.svc.Permitted(ctx, claims, rt, 999, domain.OpDelete)
		if err != nil {
			t.Fatalf("Permitted(%s) error = %v", rt, err)
		}
		if !ok {
			t.Errorf("super_admin must be permitted on %s", rt)
		}
	}
}

func TestAccessService_AdminAllowsAllButUserManagement(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(2, domain.RoleAdmin)

	ok, err := f.svc.Permitted(ctx, claims, domain.ResourceBuilding, 999, domain.OpUpdate)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if !ok {
		t.Error("admin must be permitted on buildings")
	}

	ok, err = f.svc.Permitted(ctx, claims, domain.ResourceUserManagement, 1, domain.OpUpdate)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if ok {
		t.Error("admin must be denied user management")
	}
}

func TestAccessService_ManagerBuildingAccess(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(managerOne, domain.RoleManager)

	tests := []struct {
		name       string
		buildingID uint
		expected   bool
	}{
		{"own active building", 0, true}, // filled below
		{"someone else's building", 0, false},
		{"own inactive building", 0, false},
	}
	tests[0].buildingID = f.b1
	tests[1].buildingID = f.b2
	tests[2].buildingID = f.b3

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.svc.Permitted(ctx, claims, domain.ResourceBuilding, tt.buildingID, domain.OpView)
			if err != nil {
				t.Fatalf("Permitted() error = %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Permitted() = %v, want %v", ok, tt.expected)
			}
		})
	}
}

func TestAccessService_ManagerTenantAccess(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(managerOne, domain.RoleManager)

	// tenantOne holds an executed tenancy in the manager's building
	ok, err := f.svc.Permitted(ctx, claims, domain.ResourceTenant, tenantOne, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if !ok {
		t.Error("manager must see tenants in managed buildings")
	}

	// tenantTwo rents elsewhere
	ok, err = f.svc.Permitted(ctx, claims, domain.ResourceTenant, tenantTwo, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if ok {
		t.Error("manager must not see tenants of other buildings")
	}
}

func TestAccessService_ManagerComplaintAndMaintenance(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(managerOne, domain.RoleManager)

	tests := []struct {
		name     string
		rt       domain.ResourceType
		id       uint
		expected bool
	}{
		{"complaint in managed building", domain.ResourceComplaint, f.complaintB1, true},
		{"complaint in other building", domain.ResourceComplaint, f.complaintB2, false},
		{"maintenance in managed building", domain.ResourceMaintenance, f.maintB1, true},
		{"maintenance in other building", domain.ResourceMaintenance, f.maintB2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.svc.Permitted(ctx, claims, tt.rt, tt.id, domain.OpUpdate)
			if err != nil {
				t.Fatalf("Permitted() error = %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Permitted() = %v, want %v", ok, tt.expected)
			}
		})
	}
}

func TestAccessService_ManagerTenancyAccess(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(managerOne, domain.RoleManager)

	tests := []struct {
		name      string
		tenancyID uint
		expected  bool
	}{
		{"tenancy in managed building", 0, true}, // filled below
		{"tenancy in other building", 0, false},
	}
	tests[0].tenancyID = f.tenancyB1
	tests[1].tenancyID = f.tenancyB2

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.svc.Permitted(ctx, claims, domain.ResourceTenancy, tt.tenancyID, domain.OpUpdate)
			if err != nil {
				t.Fatalf("Permitted() error = %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Permitted() = %v, want %v", ok, tt.expected)
			}
		})
	}
}

// A tenancy id and a principal id live in different spaces. The tenant
// rule must follow the record's tenant_user_id, never compare the path
// id against the caller.
func TestAccessService_TenantTenancyOwnership(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(tenantOne, domain.RoleTenant)

	// Own tenancy, even though its id differs from the principal id
	ok, err := f.svc.Permitted(ctx, claims, domain.ResourceTenancy, f.tenancyB1, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if !ok {
		t.Error("tenant must see their own tenancy")
	}

	// Pad tenantTwo's tenancies until one's id collides with
	// tenantOne's principal id; the collision must not grant access.
	collision := f.tenancyB2
	for collision != tenantOne {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		collision = f.addTenancy(t, f.b2, tenantTwo, domain.AgreementExecuted, start, end)
	}
	ok, err = f.svc.Permitted(ctx, claims, domain.ResourceTenancy, collision, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if ok {
		t.Error("tenant must not see a foreign tenancy whose id matches their principal id")
	}
}

func TestAccessService_PaymentAccess(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		claims    *domain.TokenClaims
		paymentID uint
		expected  bool
	}{
		{"manager settles payment in managed building", claimsFor(managerOne, domain.RoleManager), 0, true},
		{"manager denied payment in other building", claimsFor(managerOne, domain.RoleManager), 0, false},
		{"tenant sees own payment", claimsFor(tenantOne, domain.RoleTenant), 0, true},
		{"tenant denied foreign payment", claimsFor(tenantOne, domain.RoleTenant), 0, false},
	}
	tests[0].paymentID = f.paymentB1
	tests[1].paymentID = f.paymentB2
	tests[2].paymentID = f.paymentB1
	tests[3].paymentID = f.paymentB2

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.svc.Permitted(ctx, tt.claims, domain.ResourcePayment, tt.paymentID, domain.OpUpdate)
			if err != nil {
				t.Fatalf("Permitted() error = %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Permitted() = %v, want %v", ok, tt.expected)
			}
		})
	}
}

func TestAccessService_MissingResourcePropagates(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(managerOne, domain.RoleManager)

	_, err := f.svc.Permitted(ctx, claims, domain.ResourceComplaint, 999, domain.OpView)
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("Permitted(missing complaint) error = %v, want ErrResourceNotFound", err)
	}
}

func TestAccessService_TenantBuildingWindow(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(tenantOne, domain.RoleTenant)

	// Inside the tenancy window
	ok, err := f.svc.Permitted(ctx, claims, domain.ResourceBuilding, f.b1, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if !ok {
		t.Error("tenant with active tenancy must see the building")
	}

	// The same question flips once the window lapses
	f.now = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	ok, err = f.svc.Permitted(ctx, claims, domain.ResourceBuilding, f.b1, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if ok {
		t.Error("tenant with lapsed tenancy must not see the building")
	}
}

func TestAccessService_TenantOwnership(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()
	claims := claimsFor(tenantOne, domain.RoleTenant)

	tests := []struct {
		name     string
		rt       domain.ResourceType
		id       uint
		expected bool
	}{
		{"own tenant profile", domain.ResourceTenant, tenantOne, true},
		{"other tenant profile", domain.ResourceTenant, tenantTwo, false},
		{"own complaint", domain.ResourceComplaint, f.complaintB1, true},
		{"other tenant's complaint", domain.ResourceComplaint, f.complaintB2, false},
		{"own maintenance request", domain.ResourceMaintenance, f.maintB1, true},
		{"other tenant's maintenance request", domain.ResourceMaintenance, f.maintB2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.svc.Permitted(ctx, claims, tt.rt, tt.id, domain.OpView)
			if err != nil {
				t.Fatalf("Permitted() error = %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Permitted() = %v, want %v", ok, tt.expected)
			}
		})
	}
}

// Unknown resource kinds deny for manager and tenant.
func TestAccessService_FailsClosed(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleTenant} {
		ok, err := f.svc.Permitted(ctx, claimsFor(managerOne, role), domain.ResourceUserManagement, 1, domain.OpView)
		if err != nil {
			t.Fatalf("Permitted() error = %v", err)
		}
		if ok {
			t.Errorf("%s must be denied user management", role)
		}
	}

	// An unparseable role in the claims denies outright
	ok, err := f.svc.Permitted(ctx, claimsFor(1, domain.Role("owner")), domain.ResourceBuilding, f.b1, domain.OpView)
	if err != nil {
		t.Fatalf("Permitted() error = %v", err)
	}
	if ok {
		t.Error("unknown role must be denied")
	}
}

func TestAccessService_AccessibleBuildings(t *testing.T) {
	f := newAccessFixture(t)
	ctx := context.Background()

	scope, err := f.svc.AccessibleBuildings(ctx, claimsFor(1, domain.RoleSuperAdmin))
	if err != nil {
		t.Fatalf("AccessibleBuildings() error = %v", err)
	}
	if !scope.Unrestricted() {
		t.Error("super_admin scope must be unrestricted")
	}

	scope, err = f.svc.AccessibleBuildings(ctx, claimsFor(managerOne, domain.RoleManager))
	if err != nil {
		t.Fatalf("AccessibleBuildings() error = %v", err)
	}
	if scope.Unrestricted() {
		t.Error("manager scope must be restricted")
	}
	if !scope.Contains(f.b1) || !scope.Contains(f.b3) || scope.Contains(f.b2) {
		t.Errorf("manager scope = %v, want b1 and b3 only", scope.BuildingIDs())
	}

	// A manager with no buildings gets an empty scope, not unrestricted
	scope, err = f.svc.AccessibleBuildings(ctx, claimsFor(99, domain.RoleManager))
	if err != nil {
		t.Fatalf("AccessibleBuildings() error = %v", err)
	}
	if scope.Unrestricted() || !scope.Empty() {
		t.Errorf("unassigned manager scope must be empty, got %v", scope.BuildingIDs())
	}

	scope, err = f.svc.AccessibleBuildings(ctx, claimsFor(tenantOne, domain.RoleTenant))
	if err != nil {
		t.Fatalf("AccessibleBuildings() error = %v", err)
	}
	if !scope.Contains(f.b1) || scope.Contains(f.b2) {
		t.Errorf("tenant scope = %v, want b1 only", scope.BuildingIDs())
	}

	// The tenant's scope empties once the tenancy window lapses
	f.now = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	scope, err = f.svc.AccessibleBuildings(ctx, claimsFor(tenantOne, domain.RoleTenant))
	if err != nil {
		t.Fatalf("AccessibleBuildings() error = %v", err)
	}
	if !scope.Empty() {
		t.Errorf("lapsed tenant scope must be empty, got %v", scope.BuildingIDs())
	}
}
