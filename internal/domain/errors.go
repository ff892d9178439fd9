package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrStaleFetch          = errors.New("fetch superseded by a newer request")
	ErrInvalidTransition   = errors.New("command center transition not allowed")
)

// NetworkError reports a request that never produced an HTTP response.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error contacting API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response. Detail is empty when the body carried no usable message.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API %s %s failed", e.Method, e.Path)
	}
	return fmt.Sprintf("API %s %s failed: %s", e.Method, e.Path, e.Detail)
}

func (e *HTTPError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
