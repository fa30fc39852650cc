package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
)

// ReminderSender queues next-day reminders relative to now.
type ReminderSender interface {
	Execute(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the periodic jobs of the API in the shop's timezone.
type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	timeout time.Duration
}

func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
			cron.WithLogger(cronLogger{}),
		),
		loc:     loc,
		timeout: 2 * time.Minute,
	}
}

// AddReminders registers the reminder job under a standard five-field
// cron expression.
func (s *Scheduler) AddReminders(spec string, sender ReminderSender) error {
	if _, err := s.cron.AddFunc(spec, s.reminderJob(sender)); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.WithField("jobs", len(s.cron.Entries())).Info("Scheduler started")
}

// Stop prevents new runs and waits for the running ones, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) reminderJob(sender ReminderSender) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		queued, err := sender.Execute(ctx, time.Now().In(s.loc))
		metrics.RecordJobRun("reminders", err)
		if err != nil {
			log.WithError(err).Error("Reminder job failed")
			return
		}
		log.WithField("queued", queued).Info("Reminder job finished")
	}
}

// cronLogger routes cron's own messages to logrus.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.WithFields(fields(keysAndValues)).Debug("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.WithError(err).WithFields(fields(keysAndValues)).Error("cron: " + msg)
}

func fields(kv []interface{}) log.Fields {
	f := log.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}
