package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

// LocalStore keeps files on disk under root/<kind>/<name>; they are served
// publicly under prefix.
type LocalStore struct {
	root   string
	prefix string
}

func NewLocalStore(root, prefix string) (*LocalStore, error) {
	for _, kind := range []string{KindReferences, KindServices} {
		if err := os.MkdirAll(filepath.Join(root, kind), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
	}
	return &LocalStore{root: root, prefix: prefix}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(ctx context.Context, kind string, fh *multipart.FileHeader) (string, error) {
	img, err := ReadImage(fh)
	if err != nil {
		return "", err
	}

	name := newName(img.Ext)
	if err := os.WriteFile(s.path(kind, name), img.Data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return name, nil
}

// Delete treats a missing file as already deleted.
func (s *LocalStore) Delete(ctx context.Context, kind, name string) error {
	err := os.Remove(s.path(kind, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) URL(kind, name string) string {
	if name == "" {
		return ""
	}
	return path.Join(s.prefix, kind, name)
}

func (s *LocalStore) Exists(kind, name string) bool {
	_, err := os.Stat(s.path(kind, name))
	return err == nil
}

func (s *LocalStore) path(kind, name string) string {
	return filepath.Join(s.root, kind, filepath.Base(name))
}
