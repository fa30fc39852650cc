package appointment

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
)

type SendReminders struct {
	byDate   *ListAppointmentsByDate
	users    account.Repository
	services catalog.Repository
	notifier *notify.Notifier
	loc      *time.Location
}

func NewSendReminders(
	byDate *ListAppointmentsByDate,
	users account.Repository,
	services catalog.Repository,
	notifier *notify.Notifier,
	loc *time.Location,
) *SendReminders {
	return &SendReminders{
		byDate:   byDate,
		users:    users,
		services: services,
		notifier: notifier,
		loc:      loc,
	}
}

// Execute queues a reminder for every active appointment on the day after
// now and returns how many were queued.
func (uc *SendReminders) Execute(ctx context.Context, now time.Time) (int, error) {
	tomorrow := now.In(uc.loc).AddDate(0, 0, 1)

	list, err := uc.byDate.Execute(ctx, tomorrow)
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, nil
	}

	userIDs := make([]string, 0, len(list))
	serviceIDs := make([]string, 0, len(list))
	for _, ap := range list {
		userIDs = append(userIDs, ap.UserID)
		serviceIDs = append(serviceIDs, ap.ServiceID)
	}

	users, err := uc.users.FindByIDs(ctx, models.UniqueIDs(userIDs))
	if err != nil {
		return 0, err
	}
	services, err := uc.services.FindByIDs(ctx, models.UniqueIDs(serviceIDs))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range list {
		ap := &list[i]
		u, ok := users[ap.UserID]
		if !ok {
			log.WithField("appointment_id", ap.ID).Warn("reminder skipped, owner not found")
			continue
		}

		var svc *models.Service
		if s, ok := services[ap.ServiceID]; ok {
			svc = &s
		}

		uc.notifier.Notify(notify.Reminder(&u, svc, ap, uc.loc))
		sent++
	}

	return sent, nil
}
