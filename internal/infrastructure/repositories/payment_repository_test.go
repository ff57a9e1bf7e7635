package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

func seedPayment(t *testing.T, db *gorm.DB, tenancyID uint, amount int64, status domain.PaymentStatus) uint {
	t.Helper()

	p := &DBPayment{
		Reference: "ref_" + time.Now().Format("150405.000000000"),
		TenancyID: tenancyID,
		Amount:    amount,
		Method:    "bank_transfer",
		Status:    string(status),
		DueDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}
	return p.ID
}

func TestPaymentRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	b1 := seedBuilding(t, db, "B1", nil)
	tenancyID := seedTenancy(t, db, b1, 5, domain.AgreementExecuted,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))

	p := &domain.Payment{
		Reference: "pay_abc",
		TenancyID: tenancyID,
		Amount:    150000,
		Method:    "card",
		Status:    domain.PaymentPending,
		DueDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Reference != "pay_abc" || found.Amount != 150000 || found.Status != domain.PaymentPending {
		t.Errorf("unexpected payment: %+v", found)
	}
	if found.PaidAt != nil {
		t.Error("pending payment must have no PaidAt")
	}
}

// Payments are scoped to buildings through tenancy -> unit -> room -> floor.
func TestPaymentRepository_ListScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	b1 := seedBuilding(t, db, "B1", nil)
	b2 := seedBuilding(t, db, "B2", nil)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	t1 := seedTenancy(t, db, b1, 5, domain.AgreementExecuted, start, end)
	t2 := seedTenancy(t, db, b2, 6, domain.AgreementExecuted, start, end)

	seedPayment(t, db, t1, 100, domain.PaymentPaid)
	seedPayment(t, db, t1, 200, domain.PaymentPending)
	seedPayment(t, db, t2, 400, domain.PaymentPaid)

	tests := []struct {
		name     string
		scope    domain.BuildingScope
		expected int
	}{
		{"unrestricted sees all", domain.UnrestrictedScope(), 3},
		{"restricted to b1", domain.RestrictedScope([]uint{b1}), 2},
		{"restricted to b2", domain.RestrictedScope([]uint{b2}), 1},
		{"empty restriction sees nothing", domain.RestrictedScope(nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments, err := repo.List(ctx, tt.scope)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(payments) != tt.expected {
				t.Errorf("List() returned %d payments, want %d", len(payments), tt.expected)
			}
		})
	}
}

func TestPaymentRepository_TotalByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	b1 := seedBuilding(t, db, "B1", nil)
	b2 := seedBuilding(t, db, "B2", nil)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	t1 := seedTenancy(t, db, b1, 5, domain.AgreementExecuted, start, end)
	t2 := seedTenancy(t, db, b2, 6, domain.AgreementExecuted, start, end)

	seedPayment(t, db, t1, 100, domain.PaymentPaid)
	seedPayment(t, db, t1, 200, domain.PaymentPaid)
	seedPayment(t, db, t1, 50, domain.PaymentPending)
	seedPayment(t, db, t2, 400, domain.PaymentPaid)

	total, err := repo.TotalByStatus(ctx, domain.UnrestrictedScope(), domain.PaymentPaid)
	if err != nil {
		t.Fatalf("TotalByStatus() error = %v", err)
	}
	if total != 700 {
		t.Errorf("TotalByStatus(unrestricted, paid) = %d, want 700", total)
	}

	total, err = repo.TotalByStatus(ctx, domain.RestrictedScope([]uint{b1}), domain.PaymentPaid)
	if err != nil {
		t.Fatalf("TotalByStatus() error = %v", err)
	}
	if total != 300 {
		t.Errorf("TotalByStatus(b1, paid) = %d, want 300", total)
	}

	// No matching rows sums to zero, not an error
	total, err = repo.TotalByStatus(ctx, domain.RestrictedScope([]uint{b2}), domain.PaymentOverdue)
	if err != nil {
		t.Fatalf("TotalByStatus() error = %v", err)
	}
	if total != 0 {
		t.Errorf("TotalByStatus(b2, overdue) = %d, want 0", total)
	}

	total, err = repo.TotalByStatus(ctx, domain.RestrictedScope(nil), domain.PaymentPaid)
	if err != nil {
		t.Fatalf("TotalByStatus() error = %v", err)
	}
	if total != 0 {
		t.Errorf("TotalByStatus(empty scope, paid) = %d, want 0", total)
	}
}

func TestPaymentRepository_MarkPaid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	b1 := seedBuilding(t, db, "B1", nil)
	t1 := seedTenancy(t, db, b1, 5, domain.AgreementExecuted,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	id := seedPayment(t, db, t1, 100, domain.PaymentPending)

	paidAt := time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC)
	if err := repo.MarkPaid(ctx, id, paidAt); err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}

	found, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Status != domain.PaymentPaid {
		t.Errorf("Status = %q, want paid", found.Status)
	}
	if found.PaidAt == nil || !found.PaidAt.Equal(paidAt) {
		t.Errorf("PaidAt = %v, want %v", found.PaidAt, paidAt)
	}

	if err := repo.MarkPaid(ctx, 999, paidAt); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("MarkPaid(missing) error = %v, want ErrResourceNotFound", err)
	}
}
