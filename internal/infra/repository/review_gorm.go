package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

var _ review.Repository = (*ReviewGormRepository)(nil)

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rv).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Exists(ctx context.Context, userID, appointmentID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND appointment_id = ?", userID, appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) List(ctx context.Context, f review.Filter) ([]models.Review, error) {
	q := r.db.WithContext(ctx).Model(&models.Review{})

	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.AppointmentID != "" {
		q = q.Where("appointment_id = ?", f.AppointmentID)
	}

	var list []models.Review
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReviewGormRepository) Update(ctx context.Context, rv *models.Review) error {
	return translate(r.db.WithContext(ctx).Save(rv).Error)
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) ReviewedAppointmentIDs(
	ctx context.Context,
	userID string,
	appointmentIDs []string,
) (map[string]bool, error) {

	out := make(map[string]bool, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return out, nil
	}

	q := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("appointment_id IN ?", appointmentIDs)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var ids []string
	if err := q.Pluck("appointment_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
