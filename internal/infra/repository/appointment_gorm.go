package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	domainAppointment "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

var _ domainAppointment.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return translate(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Appointment, error) {
	out := make(map[string]models.Appointment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var list []models.Appointment
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, ap := range list {
		out[ap.ID] = ap
	}
	return out, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domainAppointment.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.From != nil {
		q = q.Where(`"date" >= ?`, *f.From)
	}
	if f.To != nil {
		q = q.Where(`"date" < ?`, *f.To)
	}

	var list []models.Appointment
	if err := q.Order(`"date" ASC`).Order("time_slot ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return translate(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
