package notify

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

const (
	KindEmailConfirmation = "email_confirmation"
	KindBookingConfirmed  = "booking_confirmation"
	KindReminder          = "reminder"
)

const signature = "\n\nAtenciosamente,\nEquipe Barbearia"

func EmailConfirmation(u *models.User, link string) Message {
	return Message{
		Kind:    KindEmailConfirmation,
		To:      u.Email,
		Subject: "Confirmação de Email",
		Body: fmt.Sprintf(
			"Olá %s,\n\nVocê está recebendo este email porque se registrou na Barbearia.\n"+
				"Por favor, confirme seu email acessando o link abaixo (válido por 24 horas):\n\n%s",
			u.Name, link,
		) + signature,
	}
}

func BookingConfirmation(u *models.User, svc *models.Service, ap *models.Appointment, loc *time.Location) Message {
	return Message{
		Kind:    KindBookingConfirmed,
		To:      u.Email,
		Subject: "Confirmação de Agendamento",
		Body: fmt.Sprintf(
			"Olá %s,\n\nSeu agendamento foi realizado com sucesso!\n\n"+
				"Detalhes do agendamento:\nServiço: %s\nData: %s\nHorário: %s",
			u.Name, svc.Name, FormatDate(ap.Date, loc), ap.TimeSlot,
		) + signature,
	}
}

func Reminder(u *models.User, svc *models.Service, ap *models.Appointment, loc *time.Location) Message {
	serviceName := "seu serviço"
	if svc != nil {
		serviceName = svc.Name
	}
	return Message{
		Kind:    KindReminder,
		To:      u.Email,
		Subject: "Lembrete de Agendamento",
		Body: fmt.Sprintf(
			"Olá %s,\n\nLembramos que você tem um horário marcado amanhã.\n\n"+
				"Serviço: %s\nData: %s\nHorário: %s",
			u.Name, serviceName, FormatDate(ap.Date, loc), ap.TimeSlot,
		) + signature,
	}
}

// FormatDate renders d as dd/mm/yyyy in loc.
func FormatDate(d time.Time, loc *time.Location) string {
	if loc != nil {
		d = d.In(loc)
	}
	return d.Format("02/01/2006")
}
