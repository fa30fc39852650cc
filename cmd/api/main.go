package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/jobs"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
	"github.com/BruksfildServices01/barbearia-api/internal/routes"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barbearia-api/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)

	// ===============================
	// Infra
	// ===============================
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	files, uploadsRoot, err := openFiles(ctx, cfg)
	if err != nil {
		return err
	}

	revoker, closeRevoker, err := openRevoker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRevoker()

	notifier := notify.NewNotifier(newMailer(cfg))
	auditLog := audit.New(store.AuditLogs)
	dispatcher := audit.NewDispatcher(auditLog)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpire)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := ucAccount.NewSeedAdmin(store.Users).Execute(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.WithError(err).Warn("admin seed skipped")
		}
	}

	// ===============================
	// Jobs
	// ===============================
	scheduler := jobs.NewScheduler(loc)
	reminders := ucAppointment.NewSendReminders(
		ucAppointment.NewListAppointmentsByDate(store.Appointments, loc),
		store.Users,
		store.Services,
		notifier,
		loc,
	)
	if err := scheduler.AddReminders(cfg.ReminderCron, reminders); err != nil {
		return err
	}
	scheduler.Start()

	// ===============================
	// HTTP
	// ===============================
	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Store:       store,
		Files:       files,
		Tokens:      tokens,
		Revoker:     revoker,
		Notifier:    notifier,
		Audit:       dispatcher,
		AuditLog:    auditLog,
		Location:    loc,
		UploadsRoot: uploadsRoot,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr()).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("scheduler shutdown")
	}
	if err := notifier.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("e-mails left unsent")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("audit events left unwritten")
	}
	return nil
}
