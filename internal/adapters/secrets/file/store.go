package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
)

const (
	tokenDirMode  = 0o700
	tokenFileMode = 0o600
)

// Store keeps each token in its own 0600 file below root. A "scheme://a/b" key lives at
// root/scheme/a/b.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.withPath(ctx, key, true, func(path string) error {
		if err := os.MkdirAll(filepath.Dir(path), tokenDirMode); err != nil {
			return fmt.Errorf("create token directory: %w", err)
		}
		return writeTokenFile(path, value)
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var token string
	err := s.withPath(ctx, key, false, func(path string) error {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("token %q: %w", key, domain.ErrSecretNotFound)
		case err != nil:
			return fmt.Errorf("read token %q: %w", key, err)
		}
		token = string(data)
		return nil
	})
	return token, err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.withPath(ctx, key, true, func(path string) error {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete token %q: %w", key, err)
		}
		return nil
	})
}

func (s *Store) withPath(ctx context.Context, key string, write bool, fn func(path string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.tokenPath(key)
	if err != nil {
		return err
	}

	if write {
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn(path)
}

func (s *Store) tokenPath(key string) (string, error) {
	ref := strings.TrimSpace(key)
	if ref == "" {
		return "", errors.New("token key is empty")
	}
	if scheme, rest, ok := strings.Cut(ref, "://"); ok {
		ref = scheme + "/" + rest
	}

	cleaned := filepath.Clean(ref)
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid token key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

// writeTokenFile replaces path atomically so a reader never sees a half-written token.
func writeTokenFile(path, value string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := tmp.Chmod(tokenFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}
