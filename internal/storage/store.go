package storage

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Directories (or key prefixes) per upload type.
const (
	KindReferences = "referencias"
	KindServices   = "servicos"
)

type FileStore interface {
	// Save validates fh as an image and stores it under a generated unique
	// name. The returned name is what gets persisted on the record.
	Save(ctx context.Context, kind string, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, kind, name string) error
	URL(kind, name string) string
}

func newName(ext string) string {
	return uuid.NewString() + ext
}

// RemoveBestEffort deletes a stored file and only logs failures.
func RemoveBestEffort(ctx context.Context, store FileStore, kind, name string) {
	if name == "" {
		return
	}
	if err := store.Delete(ctx, kind, name); err != nil {
		log.WithError(err).
			WithFields(log.Fields{"kind": kind, "file": name}).
			Warn("failed to remove stored file")
	}
}
