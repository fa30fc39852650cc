package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ReviewUser struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type ReviewService struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Type string `json:"tipo"`
}

type ReviewAppointment struct {
	ID      string         `json:"id"`
	Service *ReviewService `json:"servico"`
}

type ReviewView struct {
	ID          string             `json:"id"`
	User        *ReviewUser        `json:"usuario"`
	Appointment *ReviewAppointment `json:"agendamento"`
	Rating      int                `json:"nota"`
	Comment     string             `json:"comentario"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func NewReviewView(
	r models.Review,
	users map[string]models.User,
	appointments map[string]models.Appointment,
	services map[string]models.Service,
) ReviewView {
	v := ReviewView{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}

	if u, ok := users[r.UserID]; ok {
		v.User = &ReviewUser{ID: u.ID, Name: u.Name}
	}
	if ap, ok := appointments[r.AppointmentID]; ok {
		v.Appointment = &ReviewAppointment{ID: ap.ID}
		if s, ok := services[ap.ServiceID]; ok {
			v.Appointment.Service = &ReviewService{ID: s.ID, Name: s.Name, Type: s.Type}
		}
	}
	return v
}
