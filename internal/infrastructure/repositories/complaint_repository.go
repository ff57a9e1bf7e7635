package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// ComplaintRepositoryImpl implements domain.ComplaintRepository using GORM
type ComplaintRepositoryImpl struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) domain.ComplaintRepository {
	return &ComplaintRepositoryImpl{db: db}
}

// Create implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) Create(ctx context.Context, c *domain.Complaint) error {
	dbComplaint := &DBComplaint{
		TenantUserID: c.TenantUserID,
		BuildingID:   c.BuildingID,
		Subject:      c.Subject,
		Description:  c.Description,
		Status:       string(domain.ComplaintOpen),
	}
	if err := r.db.WithContext(ctx).Create(dbComplaint).Error; err != nil {
		return err
	}
	c.ID = dbComplaint.ID
	c.Status = domain.ComplaintOpen
	return nil
}

// FindByID implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	var dbComplaint DBComplaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbComplaint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return dbToDomainComplaint(&dbComplaint), nil
}

// UpdateStatus implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.ComplaintStatus) error {
	res := r.db.WithContext(ctx).Model(&DBComplaint{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// List implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Complaint, error) {
	if scope.Empty() {
		return []domain.Complaint{}, nil
	}
	var dbComplaints []DBComplaint
	q := scopeBuildings(r.db.WithContext(ctx), "building_id", scope)
	if err := q.Order("id").Find(&dbComplaints).Error; err != nil {
		return nil, err
	}
	complaints := make([]domain.Complaint, 0, len(dbComplaints))
	for i := range dbComplaints {
		complaints = append(complaints, *dbToDomainComplaint(&dbComplaints[i]))
	}
	return complaints, nil
}

// CountOpen implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) CountOpen(ctx context.Context, scope domain.BuildingScope) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}
	var count int64
	q := scopeBuildings(r.db.WithContext(ctx).Model(&DBComplaint{}), "building_id", scope).
		Where("status IN ?", []string{string(domain.ComplaintOpen), string(domain.ComplaintInProgress)})
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func dbToDomainComplaint(c *DBComplaint) *domain.Complaint {
	return &domain.Complaint{
		ID:           c.ID,
		TenantUserID: c.TenantUserID,
		BuildingID:   c.BuildingID,
		Subject:      c.Subject,
		Description:  c.Description,
		Status:       domain.ComplaintStatus(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
