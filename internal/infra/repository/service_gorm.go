package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Service, error) {
	out := make(map[string]models.Service, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	for _, s := range services {
		out[s.ID] = s
	}
	return out, nil
}

func (r *ServiceGormRepository) List(ctx context.Context, f catalog.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})

	if f.Type != "" {
		q = q.Where(`"type" = ?`, f.Type)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
