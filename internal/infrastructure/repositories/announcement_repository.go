package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// AnnouncementRepositoryImpl implements domain.AnnouncementRepository using GORM
type AnnouncementRepositoryImpl struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) domain.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{db: db}
}

// Create implements domain.AnnouncementRepository
func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *domain.Announcement) error {
	dbAnnouncement := &DBAnnouncement{
		BuildingID: a.BuildingID,
		Title:      a.Title,
		Body:       a.Body,
		PostedBy:   a.PostedBy,
	}
	if err := r.db.WithContext(ctx).Create(dbAnnouncement).Error; err != nil {
		return err
	}
	a.ID = dbAnnouncement.ID
	return nil
}

// List implements domain.AnnouncementRepository
func (r *AnnouncementRepositoryImpl) List(ctx context.Context, scope domain.BuildingScope) ([]domain.Announcement, error) {
	if scope.Empty() {
		return []domain.Announcement{}, nil
	}
	var dbAnnouncements []DBAnnouncement
	q := scopeBuildings(r.db.WithContext(ctx), "building_id", scope)
	if err := q.Order("id DESC").Find(&dbAnnouncements).Error; err != nil {
		return nil, err
	}
	announcements := make([]domain.Announcement, 0, len(dbAnnouncements))
	for i := range dbAnnouncements {
		a := dbAnnouncements[i]
		announcements = append(announcements, domain.Announcement{
			ID:         a.ID,
			BuildingID: a.BuildingID,
			Title:      a.Title,
			Body:       a.Body,
			PostedBy:   a.PostedBy,
			CreatedAt:  a.CreatedAt,
		})
	}
	return announcements, nil
}
