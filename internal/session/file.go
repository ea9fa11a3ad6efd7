package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileTier is a durable tier backed by one file per key in a state
// directory. Files are written 0600: the token is a credential.
type FileTier struct {
	dir string
}

func NewFileTier(dir string) (*FileTier, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileTier{dir: dir}, nil
}

func (t *FileTier) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(t.path(key))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}

func (t *FileTier) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(t.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (t *FileTier) Delete(_ context.Context, key string) error {
	err := os.Remove(t.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (t *FileTier) path(key string) string {
	return filepath.Join(t.dir, key)
}
