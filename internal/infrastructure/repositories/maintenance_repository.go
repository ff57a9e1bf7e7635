package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// MaintenanceRepositoryImpl implements domain.MaintenanceRepository using GORM
type MaintenanceRepositoryImpl struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) domain.MaintenanceRepository {
	return &MaintenanceRepositoryImpl{db: db}
}

// Create implements domain.MaintenanceRepository
func (r *MaintenanceRepositoryImpl) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	dbReq := &DBMaintenanceRequest{
		TenantUserID: m.TenantUserID,
		BuildingID:   m.BuildingID,
		Category:     m.Category,
		Description:  m.Description,
		Status:       string(domain.MaintenanceRequested),
	}
	if err := r.db.WithContext(ctx).Create(dbReq).Error; err != nil {
		return err
	}
	m.ID = dbReq.ID
	m.Status = domain.MaintenanceRequested
	return nil
}

// FindByID implements domain.MaintenanceRepository
func (r *MaintenanceRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.MaintenanceRequest, error) {
	var dbReq DBMaintenanceRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbReq).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return dbToDomainMaintenance(&dbReq), nil
}

// UpdateStatus implements domain.MaintenanceRepository
func (r *MaintenanceRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.MaintenanceStatus) error {
	res := r.db.WithContext(ctx).Model(&DBMaintenanceRequest{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// List implements domain.MaintenanceRepository
func (r *MaintenanceRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.MaintenanceRequest, error) {
	if scope.Empty() {
		return []domain.MaintenanceRequest{}, nil
	}
	var dbReqs []DBMaintenanceRequest
	q := scopeBuildings(r.db.WithContext(ctx), "building_id", scope)
	if err := q.Order("id").Find(&dbReqs).Error; err != nil {
		return nil, err
	}
	reqs := make([]domain.MaintenanceRequest, 0, len(dbReqs))
	for i := range dbReqs {
		reqs = append(reqs, *dbToDomainMaintenance(&dbReqs[i]))
	}
	return reqs, nil
}

// CountOpen implements domain.MaintenanceRepository
func (r *MaintenanceRepositoryImpl) CountOpen(ctx context.Context, scope domain.BuildingScope) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}
	var count int64
	q := scopeBuildings(r.db.WithContext(ctx).Model(&DBMaintenanceRequest{}), "building_id", scope).
		Where("status IN ?", []string{string(domain.MaintenanceRequested), string(domain.MaintenanceScheduled)})
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func dbToDomainMaintenance(m *DBMaintenanceRequest) *domain.MaintenanceRequest {
	return &domain.MaintenanceRequest{
		ID:           m.ID,
		TenantUserID: m.TenantUserID,
		BuildingID:   m.BuildingID,
		Category:     m.Category,
		Description:  m.Description,
		Status:       domain.MaintenanceStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
