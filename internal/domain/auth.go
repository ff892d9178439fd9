package domain

// SecretRef points to a secret-store entry in "ppai://path" form.
type SecretRef string

const (
	AccessTokenRef  SecretRef = "ppai://session/access_token"
	RefreshTokenRef SecretRef = "ppai://session/refresh_token"
)
