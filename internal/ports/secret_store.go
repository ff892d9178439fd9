package ports

import "context"

// SecretStore holds session tokens. Get wraps domain.ErrSecretNotFound for absent keys.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
