package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// PaymentRepositoryImpl implements domain.PaymentRepository using GORM.
// Payments reach their building through the tenancy's unit chain.
type PaymentRepositoryImpl struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) scoped(ctx context.Context, scope domain.BuildingScope) *gorm.DB {
	q := r.db.WithContext(ctx).Table("payments")
	if scope.Unrestricted() {
		return q
	}
	q = q.
		Joins("JOIN tenancies ON tenancies.id = payments.tenancy_id").
		Joins("JOIN units ON units.id = tenancies.unit_id").
		Joins("JOIN rooms ON rooms.id = units.room_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id")
	return scopeBuildings(q, "floors.building_id", scope)
}

// Create implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) Create(ctx context.Context, p *domain.Payment) error {
	dbPayment := &DBPayment{
		Reference: p.Reference,
		TenancyID: p.TenancyID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    string(p.Status),
		DueDate:   p.DueDate,
		PaidAt:    p.PaidAt,
	}
	if err := r.db.WithContext(ctx).Create(dbPayment).Error; err != nil {
		return err
	}
	p.ID = dbPayment.ID
	return nil
}

// FindByID implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	var dbPayment DBPayment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPayment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return dbToDomainPayment(&dbPayment), nil
}

// List implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Payment, error) {
	if scope.Empty() {
		return []domain.Payment{}, nil
	}
	var dbPayments []DBPayment
	q := r.scoped(ctx, scope).Select("payments.*")
	if err := q.Order("payments.id").Find(&dbPayments).Error; err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(dbPayments))
	for i := range dbPayments {
		payments = append(payments, *dbToDomainPayment(&dbPayments[i]))
	}
	return payments, nil
}

// MarkPaid implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) MarkPaid(ctx context.Context, id uint, paidAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBPayment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(domain.PaymentPaid),
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// TotalByStatus implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) TotalByStatus(ctx context.Context, scope domain.BuildingScope, status domain.PaymentStatus) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}
	var total *int64
	q := r.scoped(ctx, scope).Where("payments.status = ?", string(status))
	if err := q.Select("SUM(payments.amount)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func dbToDomainPayment(p *DBPayment) *domain.Payment {
	return &domain.Payment{
		ID:        p.ID,
		Reference: p.Reference,
		TenancyID: p.TenancyID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    domain.PaymentStatus(p.Status),
		DueDate:   p.DueDate,
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
	}
}
