package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Completed ")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, st)

	_, err = ParseStatus("concluído")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCanceled, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusCanceled, StatusScheduled, false},
		{StatusCanceled, StatusCompleted, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
			}
		})
	}
}

func TestTransition_StampsTimestamps(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	changed, err := Transition(ap, StatusConfirmed, now)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, ap.ConfirmedAt)

	changed, err = Transition(ap, StatusConfirmed, now)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = Transition(ap, StatusCompleted, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	_, err = Transition(ap, StatusCanceled, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Nil(t, ap.CanceledAt)
}

func TestApplyFields(t *testing.T) {
	notes := "sem máquina"
	slot := "14:00"

	ap := &models.Appointment{Status: string(StatusScheduled), TimeSlot: "09:00"}
	require.NoError(t, ApplyFields(ap, Changes{Notes: &notes, TimeSlot: &slot}))
	assert.Equal(t, "14:00", ap.TimeSlot)
	assert.Equal(t, notes, ap.Notes)

	closed := &models.Appointment{Status: string(StatusCanceled)}
	err := ApplyFields(closed, Changes{Notes: &notes})
	assert.True(t, httperr.IsBusiness(err, "appointment_closed"))

	status := "completed"
	assert.NoError(t, ApplyFields(closed, Changes{Status: &status}))
}

func TestAvailability(t *testing.T) {
	booked := []models.Appointment{
		{TimeSlot: "09:00", Status: string(StatusScheduled)},
		{TimeSlot: "10:00", Status: string(StatusCanceled)},
		{TimeSlot: "13:00", Status: string(StatusConfirmed)},
	}

	slots := Availability(booked)
	require.Len(t, slots, len(DefaultTimeSlots))

	got := map[string]bool{}
	for _, s := range slots {
		got[s.TimeSlot] = s.Available
	}
	assert.False(t, got["09:00"])
	assert.True(t, got["10:00"])
	assert.False(t, got["13:00"])
	assert.True(t, got["17:00"])
}
