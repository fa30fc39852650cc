package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

type ServiceSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	DurationMin int     `json:"duracao"`
	Type        string  `json:"tipo"`
}

// AppointmentView is an appointment with its owner and service populated.
// Either may be null when the referenced record no longer exists.
type AppointmentView struct {
	ID      string          `json:"id"`
	User    *UserSummary    `json:"usuario"`
	Service *ServiceSummary `json:"servico"`

	Date     time.Time `json:"data"`
	TimeSlot string    `json:"horario"`
	Status   string    `json:"status"`

	ReferenceImage    *string `json:"imagemReferencia"`
	ReferenceImageURL string  `json:"imagemReferenciaUrl,omitempty"`
	Notes             string  `json:"observacoes"`

	Reviewed *bool `json:"avaliado,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CanceledAt  *time.Time `json:"canceledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewAppointmentView(
	ap models.Appointment,
	users map[string]models.User,
	services map[string]models.Service,
	imageURL string,
) AppointmentView {
	v := AppointmentView{
		ID:                ap.ID,
		Date:              ap.Date,
		TimeSlot:          ap.TimeSlot,
		Status:            ap.Status,
		ReferenceImage:    ap.ReferenceImage,
		ReferenceImageURL: imageURL,
		Notes:             ap.Notes,
		ConfirmedAt:       ap.ConfirmedAt,
		CanceledAt:        ap.CanceledAt,
		CompletedAt:       ap.CompletedAt,
		CreatedAt:         ap.CreatedAt,
	}

	if u, ok := users[ap.UserID]; ok {
		v.User = &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
	}
	if s, ok := services[ap.ServiceID]; ok {
		v.Service = &ServiceSummary{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			DurationMin: s.DurationMin,
			Type:        s.Type,
		}
	}
	return v
}
