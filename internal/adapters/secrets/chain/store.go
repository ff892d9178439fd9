package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/propertypro/ppai/internal/adapters/secrets/file"
	passstore "github.com/propertypro/ppai/internal/adapters/secrets/pass"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

// Store reads and writes tokens through primary and uses fallback when primary fails.
// Deletes go to both so a token written to either backend does not survive a logout.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	log      logrus.FieldLogger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func New(primary, fallback ports.SecretStore, log logrus.FieldLogger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{primary: primary, fallback: fallback, log: log}, nil
}

// NewPassWithFileFallback keeps tokens in pass, or in files under dir when pass is missing or failing.
func NewPassWithFileFallback(dir string, log logrus.FieldLogger) (*Store, error) {
	return New(passstore.NewStore(), filestore.NewStore(dir), log)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := withFallback(s, "put", key, func(store ports.SecretStore) (struct{}, error) {
		return struct{}{}, store.Put(ctx, key, value)
	})
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return withFallback(s, "get", key, func(store ports.SecretStore) (string, error) {
		return store.Get(ctx, key)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := ignoreNotFound(s.primary.Delete(ctx, key))
	if isContextErr(primaryErr) {
		return primaryErr
	}
	fallbackErr := ignoreNotFound(s.fallback.Delete(ctx, key))

	switch {
	case primaryErr == nil || fallbackErr == nil:
		if primaryErr != nil {
			s.logFallback("delete", key, primaryErr)
		}
		return nil
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", primaryErr, fallbackErr)
	}
}

func withFallback[T any](s *Store, op, key string, call func(ports.SecretStore) (T, error)) (T, error) {
	value, err := call(s.primary)
	if err == nil || isContextErr(err) {
		return value, err
	}
	s.logFallback(op, key, err)

	value, fallbackErr := call(s.fallback)
	if fallbackErr == nil {
		return value, nil
	}

	var zero T
	return zero, fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", op, err, op, fallbackErr)
}

func (s *Store) logFallback(op, key string, err error) {
	s.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Debug("secret store falling back")
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrSecretNotFound) {
		return nil
	}
	return err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
