package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type RequestOptions struct {
	Body   any
	Header http.Header
}

// FormData is sent as multipart/form-data instead of JSON.
type FormData struct {
	Fields map[string]string
	Files  []FormFile
}

type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     io.Reader
}

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// Empty reports a 204 or a body-less response.
func (r Response) Empty() bool {
	return r.StatusCode == http.StatusNoContent || len(r.Body) == 0
}

func (r Response) Text() string {
	return string(r.Body)
}

func (r Response) Decode(out any) error {
	if r.Empty() {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type APIClient interface {
	Do(ctx context.Context, method, path string, opts RequestOptions) (Response, error)
	Get(ctx context.Context, path string) (Response, error)
	Post(ctx context.Context, path string, body any) (Response, error)
	Put(ctx context.Context, path string, body any) (Response, error)
	Patch(ctx context.Context, path string, body any) (Response, error)
	Delete(ctx context.Context, path string) (Response, error)
}
