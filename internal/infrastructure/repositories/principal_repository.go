package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// PrincipalRepositoryImpl implements domain.PrincipalRepository using GORM
type PrincipalRepositoryImpl struct {
	db *gorm.DB
}

// NewPrincipalRepository creates a new principal repository
func NewPrincipalRepository(db *gorm.DB) domain.PrincipalRepository {
	return &PrincipalRepositoryImpl{db: db}
}

// FindByEmail implements domain.PrincipalRepository
func (r *PrincipalRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	var dbPrincipal DBPrincipal
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbPrincipal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}
	return dbToDomainPrincipal(&dbPrincipal), nil
}

// FindByID implements domain.PrincipalRepository
func (r *PrincipalRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Principal, error) {
	var dbPrincipal DBPrincipal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPrincipal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}
	return dbToDomainPrincipal(&dbPrincipal), nil
}

// List implements domain.PrincipalRepository
func (r *PrincipalRepositoryImpl) List(ctx context.Context) ([]domain.Principal, error) {
	var dbPrincipals []DBPrincipal
	if err := r.db.WithContext(ctx).Order("id").Find(&dbPrincipals).Error; err != nil {
		return nil, err
	}
	principals := make([]domain.Principal, 0, len(dbPrincipals))
	for i := range dbPrincipals {
		principals = append(principals, *dbToDomainPrincipal(&dbPrincipals[i]))
	}
	return principals, nil
}

// UpdateRole implements domain.PrincipalRepository
func (r *PrincipalRepositoryImpl) UpdateRole(ctx context.Context, id uint, role domain.Role) error {
	res := r.db.WithContext(ctx).Model(&DBPrincipal{}).Where("id = ?", id).Update("role", role.String())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPrincipalNotFound
	}
	return nil
}

// UpdateStatus implements domain.PrincipalRepository
func (r *PrincipalRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.PrincipalStatus) error {
	res := r.db.WithContext(ctx).Model(&DBPrincipal{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPrincipalNotFound
	}
	return nil
}

func dbToDomainPrincipal(p *DBPrincipal) *domain.Principal {
	role, _ := domain.ParseRole(p.Role)
	status, _ := domain.ParsePrincipalStatus(p.Status)
	return &domain.Principal{
		ID:            p.ID,
		Email:         p.Email,
		Role:          role,
		Status:        status,
		EmailVerified: p.EmailVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
