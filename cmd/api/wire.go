package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

// openStore connects the configured database and returns its repositories
// plus a close func.
func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, func(), error) {
	switch cfg.DBDriver {
	case "mongo":
		client, database, err := dbpkg.NewMongo(ctx, cfg.MongoURL, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("closing mongo")
			}
		}
		return repository.NewMongoStore(database), closeFn, nil

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewGormStore(db), func() { dbpkg.Close(db) }, nil
	}
}

// openFiles returns the upload backend. The second value is the local
// directory to serve under /uploads, empty for remote backends.
func openFiles(ctx context.Context, cfg *config.Config) (storage.FileStore, string, error) {
	if cfg.StorageBackend == "s3" {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Region:    cfg.AWSRegion,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		log.WithField("bucket", cfg.S3Bucket).Info("uploads stored on s3")
		return s3Store, "", nil
	}

	local, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		return nil, "", fmt.Errorf("upload dir: %w", err)
	}
	return local, local.Root(), nil
}

func openRevoker(ctx context.Context, cfg *config.Config) (auth.Revoker, func(), error) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, revoked tokens are kept in memory")
		return auth.NewMemoryRevoker(), func() {}, nil
	}

	r, err := auth.NewRedisRevoker(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { _ = r.Close() }, nil
}

func newMailer(cfg *config.Config) notify.Mailer {
	if cfg.EmailService == "smtp" {
		return notify.NewSMTPMailer(notify.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.MailFrom,
		})
	}
	return notify.LogMailer{}
}
