package payload

import (
	"errors"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	defaultUserID   = "0"
	defaultUserName = "Agent"
	defaultUserRole = "agent"
)

var ErrMissingAccessToken = errors.New("auth response carries no access_token")

func UserProfile(doc gjson.Result) domain.UserProfile {
	email := stringField(doc.Get("email"))
	return domain.UserProfile{
		ID:    textOr(first(doc, "id", "user_id"), defaultUserID),
		Name:  displayName(doc, email),
		Email: email,
		Role:  firstNonEmpty(stringField(doc.Get("role")), defaultUserRole),
	}
}

func displayName(doc gjson.Result, email string) string {
	parts := make([]string, 0, 2)
	for _, field := range []string{"first_name", "last_name"} {
		if part := stringField(doc.Get(field)); part != "" {
			parts = append(parts, part)
		}
	}
	if name := strings.TrimSpace(strings.Join(parts, " ")); name != "" {
		return name
	}
	if email != "" {
		if local, _, _ := strings.Cut(email, "@"); local != "" {
			return local
		}
	}
	return defaultUserName
}

// TokenResponse is the body of a login or refresh call.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    time.Duration
	User         domain.UserProfile
}

func ParseTokenResponse(body []byte) (TokenResponse, error) {
	doc := document(body)
	token := stringField(doc.Get("access_token"))
	if token == "" {
		return TokenResponse{}, ErrMissingAccessToken
	}

	response := TokenResponse{
		AccessToken:  token,
		RefreshToken: stringField(doc.Get("refresh_token")),
		TokenType:    stringField(doc.Get("token_type")),
		User:         UserProfile(doc.Get("user")),
	}
	if seconds, ok := number(doc.Get("expires_in")); ok && seconds > 0 {
		response.ExpiresIn = time.Duration(seconds * float64(time.Second))
	}
	return response, nil
}
