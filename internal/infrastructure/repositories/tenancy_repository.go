package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// TenancyRepositoryImpl implements domain.TenancyRepository using GORM.
// Building resolution always walks the unit->room->floor chain; the
// tenancy row itself never stores a building id.
type TenancyRepositoryImpl struct {
	db *gorm.DB
}

// NewTenancyRepository creates a new tenancy repository
func NewTenancyRepository(db *gorm.DB) domain.TenancyRepository {
	return &TenancyRepositoryImpl{db: db}
}

// tenancyRow carries a tenancy joined with its resolved building id.
type tenancyRow struct {
	DBTenancy
	BuildingID uint
}

// Create implements domain.TenancyRepository. New tenancies start with
// a pending agreement.
func (r *TenancyRepositoryImpl) Create(ctx context.Context, t *domain.Tenancy) error {
	dbTenancy := &DBTenancy{
		TenantUserID:    t.TenantUserID,
		UnitID:          t.UnitID,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		AgreementStatus: string(domain.AgreementPending),
		MonthlyRent:     t.MonthlyRent,
	}
	if err := r.db.WithContext(ctx).Create(dbTenancy).Error; err != nil {
		return err
	}
	t.ID = dbTenancy.ID
	t.AgreementStatus = domain.AgreementPending
	return nil
}

// FindByID implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Tenancy, error) {
	var row tenancyRow
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Select("tenancies.*, floors.building_id AS building_id").
		Where("tenancies.id = ?", id)
	if err := q.Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return rowToDomainTenancy(&row), nil
}

// List implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Tenancy, error) {
	if scope.Empty() {
		return []domain.Tenancy{}, nil
	}
	var rows []tenancyRow
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Select("tenancies.*, floors.building_id AS building_id")
	q = scopeBuildings(q, "floors.building_id", scope)
	if err := q.Order("tenancies.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	tenancies := make([]domain.Tenancy, 0, len(rows))
	for i := range rows {
		tenancies = append(tenancies, *rowToDomainTenancy(&rows[i]))
	}
	return tenancies, nil
}

// Execute implements domain.TenancyRepository: pending -> executed.
// Any other starting state is an invalid transition.
func (r *TenancyRepositoryImpl) Execute(ctx context.Context, id uint) error {
	return r.transition(ctx, id, domain.AgreementPending, domain.AgreementExecuted, nil)
}

// Terminate implements domain.TenancyRepository: executed -> terminated,
// closing the date window at endDate.
func (r *TenancyRepositoryImpl) Terminate(ctx context.Context, id uint, endDate time.Time) error {
	return r.transition(ctx, id, domain.AgreementExecuted, domain.AgreementTerminated, &endDate)
}

// transition performs a guarded status change. The WHERE clause on the
// prior status makes concurrent transitions race-safe: only one update
// can win the row.
func (r *TenancyRepositoryImpl) transition(ctx context.Context, id uint, from, to domain.AgreementStatus, endDate *time.Time) error {
	updates := map[string]interface{}{"agreement_status": string(to)}
	if endDate != nil {
		updates["end_date"] = *endDate
	}
	res := r.db.WithContext(ctx).Model(&DBTenancy{}).
		Where("id = ? AND agreement_status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish missing tenancies from wrong-state ones
		var count int64
		if err := r.db.WithContext(ctx).Model(&DBTenancy{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrResourceNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// ActiveBuildingIDs implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) ActiveBuildingIDs(ctx context.Context, tenantUserID uint, now time.Time) ([]uint, error) {
	ids := []uint{}
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Where("tenancies.tenant_user_id = ?", tenantUserID).
		Where("tenancies.agreement_status = ?", string(domain.AgreementExecuted)).
		Where("tenancies.start_date <= ? AND tenancies.end_date >= ?", now, now).
		Distinct().
		Pluck("floors.building_id", &ids)
	if q.Error != nil {
		return nil, q.Error
	}
	return ids, nil
}

// HasActiveInBuilding implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) HasActiveInBuilding(ctx context.Context, tenantUserID, buildingID uint, now time.Time) (bool, error) {
	var count int64
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Where("tenancies.tenant_user_id = ?", tenantUserID).
		Where("floors.building_id = ?", buildingID).
		Where("tenancies.agreement_status = ?", string(domain.AgreementExecuted)).
		Where("tenancies.start_date <= ? AND tenancies.end_date >= ?", now, now).
		Count(&count)
	if q.Error != nil {
		return false, q.Error
	}
	return count > 0, nil
}

// ExistsExecutedManagedBy implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) ExistsExecutedManagedBy(ctx context.Context, tenantUserID, managerID uint) (bool, error) {
	var count int64
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Joins("JOIN buildings ON buildings.id = floors.building_id").
		Where("tenancies.tenant_user_id = ?", tenantUserID).
		Where("tenancies.agreement_status = ?", string(domain.AgreementExecuted)).
		Where("buildings.manager_id = ?", managerID).
		Count(&count)
	if q.Error != nil {
		return false, q.Error
	}
	return count > 0, nil
}

// CountActive implements domain.TenancyRepository
func (r *TenancyRepositoryImpl) CountActive(ctx context.Context, scope domain.BuildingScope, now time.Time) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}
	var count int64
	q := tenancyBuildingJoin(r.db.WithContext(ctx).Table("tenancies")).
		Where("tenancies.agreement_status = ?", string(domain.AgreementExecuted)).
		Where("tenancies.start_date <= ? AND tenancies.end_date >= ?", now, now)
	q = scopeBuildings(q, "floors.building_id", scope)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func rowToDomainTenancy(row *tenancyRow) *domain.Tenancy {
	return &domain.Tenancy{
		ID:              row.ID,
		TenantUserID:    row.TenantUserID,
		UnitID:          row.UnitID,
		BuildingID:      row.BuildingID,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		AgreementStatus: domain.AgreementStatus(row.AgreementStatus),
		MonthlyRent:     row.MonthlyRent,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
