package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

func cloneSession(session domain.Session) domain.Session {
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}

// SessionStore owns the signed-in user. It is the only persisted state: the profile goes to the
// session repository and the tokens to the secret store.
type SessionStore struct {
	repo    ports.SessionRepository
	secrets ports.SecretStore
	log     logrus.FieldLogger
	state   *stateStore[domain.Session]
}

func NewSessionStore(repo ports.SessionRepository, secrets ports.SecretStore, clock ports.Clock, log logrus.FieldLogger) *SessionStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	initial := domain.Session{Preferences: domain.DefaultPreferences()}
	return &SessionStore{
		repo:    repo,
		secrets: secrets,
		log:     log,
		state:   newStateStore(initial, cloneSession, clock, log),
	}
}

func (s *SessionStore) State() domain.Session {
	return s.state.snapshot()
}

func (s *SessionStore) Subscribe(fn func(domain.Session)) (unsubscribe func()) {
	return s.state.subscribe(fn)
}

func (s *SessionStore) AccessToken() string {
	var token string
	s.state.read(func(session domain.Session) { token = session.AccessToken })
	return token
}

func (s *SessionStore) Authenticated() bool {
	return s.AccessToken() != ""
}

// Login replaces the user, both tokens and the expiry. Memory changes only once the session is persisted.
func (s *SessionStore) Login(ctx context.Context, login domain.LoginPayload) error {
	if login.AccessToken == "" {
		return &domain.ValidationError{Field: "access_token", Message: "access token is required"}
	}

	next := s.State()
	user := login.User
	next.User = &user
	next.AccessToken = login.AccessToken
	next.RefreshToken = login.RefreshToken
	next.ExpiresAt = login.ExpiresAt

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.state.update(func(session *domain.Session) {
		session.User = next.User
		session.AccessToken = next.AccessToken
		session.RefreshToken = next.RefreshToken
		session.ExpiresAt = next.ExpiresAt
	})
	s.log.WithField("user_id", user.ID).Debug("session stored")
	return nil
}

func (s *SessionStore) persist(ctx context.Context, session domain.Session) error {
	if err := s.secrets.Put(ctx, string(domain.AccessTokenRef), session.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}

	var err error
	if session.RefreshToken != "" {
		err = s.secrets.Put(ctx, string(domain.RefreshTokenRef), session.RefreshToken)
	} else {
		err = s.secrets.Delete(ctx, string(domain.RefreshTokenRef))
	}
	if err != nil {
		return s.rollbackSecrets(ctx, fmt.Errorf("store refresh token: %w", err))
	}

	if err := s.save(ctx, session); err != nil {
		return s.rollbackSecrets(ctx, err)
	}
	return nil
}

func (s *SessionStore) save(ctx context.Context, session domain.Session) error {
	persisted := domain.PersistedSession{
		User:           session.User,
		ExpiresAt:      session.ExpiresAt,
		Preferences:    session.Preferences,
		AccessTokenRef: domain.AccessTokenRef,
		SavedAt:        s.state.clock.Now().UTC(),
	}
	if session.RefreshToken != "" {
		persisted.RefreshTokenRef = domain.RefreshTokenRef
	}
	if err := s.repo.Save(ctx, persisted); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) rollbackSecrets(ctx context.Context, cause error) error {
	var rollbackErr error
	for _, ref := range []domain.SecretRef{domain.AccessTokenRef, domain.RefreshTokenRef} {
		if err := s.secrets.Delete(ctx, string(ref)); err != nil {
			rollbackErr = errors.Join(rollbackErr, err)
		}
	}
	if rollbackErr != nil {
		return fmt.Errorf("rollback stored tokens: %w", errors.Join(cause, rollbackErr))
	}
	return cause
}

// Logout clears the in-memory session first, so it succeeds locally even when cleanup fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.state.update(func(session *domain.Session) {
		session.User = nil
		session.AccessToken = ""
		session.RefreshToken = ""
		session.ExpiresAt = time.Time{}
	})

	var errs error
	for _, ref := range []domain.SecretRef{domain.AccessTokenRef, domain.RefreshTokenRef} {
		if err := s.secrets.Delete(ctx, string(ref)); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete %s: %w", ref, err))
		}
	}
	if err := s.repo.Clear(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("clear session: %w", err))
	}
	if errs != nil {
		return fmt.Errorf("logout: %w", errs)
	}
	return nil
}

// Restore loads the persisted session. A missing session, or one whose access token is gone from
// the secret store, leaves the store signed out without an error.
func (s *SessionStore) Restore(ctx context.Context) error {
	persisted, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	restored := domain.Session{
		User:        persisted.User,
		ExpiresAt:   persisted.ExpiresAt,
		Preferences: persisted.Preferences,
	}

	if persisted.AccessTokenRef != "" {
		token, err := s.secrets.Get(ctx, string(persisted.AccessTokenRef))
		switch {
		case errors.Is(err, domain.ErrSecretNotFound):
			s.log.Debug("persisted session has no access token")
		case err != nil:
			return fmt.Errorf("restore access token: %w", err)
		default:
			restored.AccessToken = token
		}
	}
	if persisted.RefreshTokenRef != "" && restored.AccessToken != "" {
		token, err := s.secrets.Get(ctx, string(persisted.RefreshTokenRef))
		if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("restore refresh token: %w", err)
		}
		restored.RefreshToken = token
	}
	if restored.AccessToken == "" {
		restored.User = nil
		restored.ExpiresAt = time.Time{}
	}

	s.state.update(func(session *domain.Session) { *session = restored })
	return nil
}

func (s *SessionStore) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	next := s.State()
	next.Preferences = next.Preferences.Apply(patch)

	if next.Authenticated() {
		if err := s.save(ctx, next); err != nil {
			return domain.Preferences{}, fmt.Errorf("update preferences: %w", err)
		}
	}

	s.state.update(func(session *domain.Session) { session.Preferences = next.Preferences })
	return next.Preferences, nil
}
