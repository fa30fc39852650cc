package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type UserView struct {
	ID             string    `json:"id"`
	Name           string    `json:"nome"`
	Email          string    `json:"email"`
	Phone          string    `json:"telefone"`
	Role           string    `json:"role"`
	EmailConfirmed bool      `json:"emailConfirmado"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmed,
		CreatedAt:      u.CreatedAt,
	}
}
