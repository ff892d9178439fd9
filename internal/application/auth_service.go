package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	loginPath   = "/api/v1/auth/login"
	refreshPath = "/api/v1/auth/refresh"
)

type AuthService struct {
	api     ports.APIClient
	session *SessionStore
	clock   ports.Clock
	log     logrus.FieldLogger
}

func NewAuthService(api ports.APIClient, session *SessionStore, clock ports.Clock, log logrus.FieldLogger) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthService{api: api, session: session, clock: clock, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Session{}, &domain.ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return domain.Session{}, &domain.ValidationError{Field: "password", Message: "password is required"}
	}

	response, err := s.api.Post(ctx, loginPath, map[string]any{"email": email, "password": password})
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	tokens, err := payload.ParseTokenResponse(response.Body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	user := tokens.User
	if user.Email == "" {
		user.Email = email
	}
	if err := s.session.Login(ctx, domain.LoginPayload{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    s.expiry(tokens),
	}); err != nil {
		return domain.Session{}, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("signed in")
	return s.session.State(), nil
}

// Refresh swaps the access token. The user and the refresh token are kept.
func (s *AuthService) Refresh(ctx context.Context) (domain.Session, error) {
	current := s.session.State()
	if current.RefreshToken == "" {
		return domain.Session{}, fmt.Errorf("refresh session: %w", domain.ErrNotAuthenticated)
	}

	response, err := s.api.Post(ctx, refreshPath, map[string]any{"refresh_token": current.RefreshToken})
	if err != nil {
		return domain.Session{}, fmt.Errorf("refresh session: %w", err)
	}
	tokens, err := payload.ParseTokenResponse(response.Body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("refresh session: %w", err)
	}

	var user domain.UserProfile
	if current.User != nil {
		user = *current.User
	}
	if err := s.session.Login(ctx, domain.LoginPayload{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: current.RefreshToken,
		ExpiresAt:    s.expiry(tokens),
	}); err != nil {
		return domain.Session{}, fmt.Errorf("refresh session: %w", err)
	}
	return s.session.State(), nil
}

// expiry prefers expires_in, then the exp claim of the access token.
func (s *AuthService) expiry(tokens payload.TokenResponse) time.Time {
	if tokens.ExpiresIn > 0 {
		return s.clock.Now().Add(tokens.ExpiresIn).UTC()
	}
	return tokenExpiry(tokens.AccessToken)
}

func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.UTC()
}
