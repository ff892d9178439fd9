package domain

import "time"

type UserProfile struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type Preferences struct {
	DarkMode bool
	Locale   string
}

const DefaultLocale = "en-US"

func DefaultPreferences() Preferences {
	return Preferences{Locale: DefaultLocale}
}

type PreferencesPatch struct {
	DarkMode *bool
	Locale   *string
}

func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	if patch.DarkMode != nil {
		p.DarkMode = *patch.DarkMode
	}
	if patch.Locale != nil {
		p.Locale = *patch.Locale
	}
	return p
}

type Session struct {
	User         *UserProfile
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Preferences  Preferences
}

func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !s.ExpiresAt.After(now)
}

type LoginPayload struct {
	User         UserProfile
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// PersistedSession is the on-disk shape of a session. Tokens live in the secret store.
type PersistedSession struct {
	User            *UserProfile
	ExpiresAt       time.Time
	Preferences     Preferences
	AccessTokenRef  SecretRef
	RefreshTokenRef SecretRef
	SavedAt         time.Time
}
