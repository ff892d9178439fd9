package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	User        *userSchema       `toml:"user,omitempty"`
	ExpiresAt   string            `toml:"expires_at,omitempty"`
	SavedAt     string            `toml:"saved_at"`
	Tokens      tokensSchema      `toml:"tokens"`
	Preferences preferencesSchema `toml:"preferences"`
}

type userSchema struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

type tokensSchema struct {
	AccessTokenRef  string `toml:"access_token_ref"`
	RefreshTokenRef string `toml:"refresh_token_ref,omitempty"`
}

type preferencesSchema struct {
	DarkMode bool   `toml:"dark_mode"`
	Locale   string `toml:"locale"`
}
