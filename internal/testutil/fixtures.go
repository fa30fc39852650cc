package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func CreateUser(t *testing.T, db *gorm.DB, name, email, role string, confirmed bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		Name:           name,
		Email:          email,
		Phone:          "11999999999",
		PasswordHash:   string(hash),
		Role:           role,
		EmailConfirmed: confirmed,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateService(t *testing.T, db *gorm.DB, name, kind string) *models.Service {
	t.Helper()

	s := &models.Service{
		Name:        name,
		Description: name + " tradicional",
		Price:       30,
		DurationMin: 30,
		Type:        kind,
		Image:       models.DefaultServiceImage,
		Available:   true,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func CreateAppointment(t *testing.T, db *gorm.DB, userID, serviceID, status string, date time.Time) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      date,
		TimeSlot:  "09:00",
		Status:    status,
	}
	require.NoError(t, db.Create(ap).Error)
	return ap
}
