package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func TestIsTimeSlot(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"", false},
		{"09h00", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeSlot(tt.in))
		})
	}
}

func TestStruct_Service(t *testing.T) {
	svc := models.Service{
		Name:        "Corte",
		Description: "Corte simples",
		Price:       30,
		DurationMin: 30,
		Type:        "corte",
	}
	require.NoError(t, Struct(&svc))

	svc.Type = "manicure"
	svc.Price = 0
	err := Struct(&svc)
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "validation_error", be.Code)
	assert.Len(t, be.Details, 2)
	assert.Contains(t, be.Details[0]+be.Details[1], "tipo")
	assert.Contains(t, be.Details[0]+be.Details[1], "preco")
}

func TestStruct_AppointmentTimeSlot(t *testing.T) {
	ap := models.Appointment{
		UserID:    "u1",
		ServiceID: "s1",
		Date:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "9h",
		Status:    "scheduled",
	}

	err := Struct(&ap)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "validation_error"))

	ap.TimeSlot = "09:00"
	assert.NoError(t, Struct(&ap))
}
