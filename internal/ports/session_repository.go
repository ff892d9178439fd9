package ports

import (
	"context"

	"github.com/propertypro/ppai/internal/domain"
)

// SessionRepository persists the non-secret part of the user session.
type SessionRepository interface {
	Load(ctx context.Context) (domain.PersistedSession, error)
	Save(ctx context.Context, session domain.PersistedSession) error
	Clear(ctx context.Context) error
}
