package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// BuildingRepositoryImpl implements domain.BuildingRepository using GORM
type BuildingRepositoryImpl struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) domain.BuildingRepository {
	return &BuildingRepositoryImpl{db: db}
}

// Create implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) Create(ctx context.Context, b *domain.Building) error {
	dbBuilding := &DBBuilding{
		Name:      b.Name,
		Address:   b.Address,
		Status:    string(b.Status),
		ManagerID: b.ManagerID,
	}
	if err := r.db.WithContext(ctx).Create(dbBuilding).Error; err != nil {
		return err
	}
	b.ID = dbBuilding.ID
	return nil
}

// FindByID implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Building, error) {
	var dbBuilding DBBuilding
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBuilding).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return dbToDomainBuilding(&dbBuilding), nil
}

// Update implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) Update(ctx context.Context, b *domain.Building) error {
	return r.db.WithContext(ctx).Model(&DBBuilding{}).Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":    b.Name,
			"address": b.Address,
			"status":  string(b.Status),
		}).Error
}

// AssignManager implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) AssignManager(ctx context.Context, id uint, managerID *uint) error {
	res := r.db.WithContext(ctx).Model(&DBBuilding{}).Where("id = ?", id).Update("manager_id", managerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// List implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Building, error) {
	if scope.Empty() {
		return []domain.Building{}, nil
	}
	var dbBuildings []DBBuilding
	q := scopeBuildings(r.db.WithContext(ctx), "id", scope)
	if err := q.Order("id").Find(&dbBuildings).Error; err != nil {
		return nil, err
	}
	buildings := make([]domain.Building, 0, len(dbBuildings))
	for i := range dbBuildings {
		buildings = append(buildings, *dbToDomainBuilding(&dbBuildings[i]))
	}
	return buildings, nil
}

// Count implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) Count(ctx context.Context, scope domain.BuildingScope) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}
	var count int64
	q := scopeBuildings(r.db.WithContext(ctx).Model(&DBBuilding{}), "id", scope)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IsActivelyManagedBy implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) IsActivelyManagedBy(ctx context.Context, buildingID, managerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBBuilding{}).
		Where("id = ? AND manager_id = ? AND status = ?", buildingID, managerID, string(domain.BuildingActive)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ManagerID implements domain.BuildingRepository
func (r *BuildingRepositoryImpl) ManagerID(ctx context.Context, buildingID uint) (*uint, error) {
	var dbBuilding DBBuilding
	err := r.db.WithContext(ctx).Select("manager_id").Where("id = ?", buildingID).First(&dbBuilding).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return dbBuilding.ManagerID, nil
}

// IDsManagedBy implements domain.BuildingRepository. The assignment
// list carries no status filter: only the per-resource building check
// requires an active building.
func (r *BuildingRepositoryImpl) IDsManagedBy(ctx context.Context, managerID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&DBBuilding{}).
		Where("manager_id = ?", managerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func dbToDomainBuilding(b *DBBuilding) *domain.Building {
	return &domain.Building{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Status:    domain.BuildingStatus(b.Status),
		ManagerID: b.ManagerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
