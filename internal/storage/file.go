// Package storage persists the users mapping to a JSON file, Postgres or Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/neexbeast/travel-companion/internal/account"
)

// FileStore keeps the users mapping in a single indented JSON document.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore constructs a FileStore for path.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the users file. A missing file yields an empty mapping; a corrupt
// one is logged and also yields an empty mapping.
func (s *FileStore) Load(ctx context.Context) (account.Users, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return account.Users{}, nil
		}
		return nil, fmt.Errorf("reading users file %s: %w", s.path, err)
	}

	users, err := decodeUsers(ctx, b)
	if err != nil {
		s.log.Warn("corrupted users file, starting fresh", "path", s.path, "err", err)
		return account.Users{}, nil
	}
	return users, nil
}

// Save replaces the users file atomically.
func (s *FileStore) Save(ctx context.Context, users account.Users) error {
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling users: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing users file %s: %w", s.path, err)
	}

	s.log.Debug("users saved", "path", s.path, "count", len(users))
	return nil
}

// decodeUsers parses a users document. A JSON null decodes to an empty mapping.
func decodeUsers(ctx context.Context, b []byte) (account.Users, error) {
	var users account.Users
	if err := json.UnmarshalContext(ctx, b, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	if users == nil {
		users = account.Users{}
	}
	return users, nil
}
