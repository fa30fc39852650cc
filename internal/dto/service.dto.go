package dto

import "github.com/BruksfildServices01/barbearia-api/internal/models"

type ServiceView struct {
	models.Service
	ImageURL string `json:"imagemUrl"`
}

func NewServiceView(s models.Service, imageURL string) ServiceView {
	return ServiceView{Service: s, ImageURL: imageURL}
}
