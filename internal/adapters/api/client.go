package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"regexp"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 8 << 20

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// Session supplies the bearer token and is told to log out when the backend answers 401.
type Session interface {
	AccessToken() string
	Logout(ctx context.Context) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	log        logrus.FieldLogger
}

var _ ports.APIClient = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithSession(session Session) Option {
	return func(c *Client) {
		c.session = session
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string) (ports.Response, error) {
	return c.Do(ctx, http.MethodGet, path, ports.RequestOptions{})
}

func (c *Client) Post(ctx context.Context, path string, body any) (ports.Response, error) {
	return c.Do(ctx, http.MethodPost, path, ports.RequestOptions{Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (ports.Response, error) {
	return c.Do(ctx, http.MethodPut, path, ports.RequestOptions{Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, body any) (ports.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, ports.RequestOptions{Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (ports.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, ports.RequestOptions{})
}

// Do performs exactly one attempt. Non-2xx answers become *domain.HTTPError and transport
// failures become *domain.NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, opts ports.RequestOptions) (ports.Response, error) {
	header := c.mergeHeaders(opts.Header)

	body, multipartType, err := encodeBody(opts.Body)
	if err != nil {
		return ports.Response{}, fmt.Errorf("encode %s %s body: %w", method, path, err)
	}
	if multipartType != "" {
		header.Del("Content-Type")
		header.Set("Content-Type", multipartType)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.resolveURL(path), body)
	if err != nil {
		return ports.Response{}, fmt.Errorf("create request: %w", err)
	}
	request.Header = header

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("api request failed")
		return ports.Response{}, &domain.NetworkError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = response.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return ports.Response{}, &domain.NetworkError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   response.StatusCode,
		"duration": time.Since(started),
	}).Debug("api request")

	result := ports.Response{
		StatusCode:  response.StatusCode,
		ContentType: response.Header.Get("Content-Type"),
		Body:        data,
	}
	if response.StatusCode == http.StatusNoContent {
		result.Body = nil
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		if response.StatusCode == http.StatusUnauthorized && c.session != nil {
			if err := c.session.Logout(context.WithoutCancel(ctx)); err != nil {
				c.log.WithError(err).Warn("logout after 401 failed")
			}
		}
		return ports.Response{}, &domain.HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: response.StatusCode,
			Detail:     errorDetail(result, statusLine(response)),
		}
	}

	return result, nil
}

func (c *Client) resolveURL(path string) string {
	if absoluteURLPattern.MatchString(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) mergeHeaders(extra http.Header) http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	if c.session != nil {
		if token := c.session.AccessToken(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range extra {
		header.Del(key)
		for _, value := range values {
			header.Add(key, value)
		}
	}
	return header
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *ports.FormData:
		if b == nil {
			return nil, "", nil
		}
		return encodeMultipart(*b)
	case ports.FormData:
		return encodeMultipart(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "", nil
	}
}

func encodeMultipart(form ports.FormData) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", name, err)
		}
	}

	for _, file := range form.Files {
		partHeader := textproto.MIMEHeader{}
		partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		partHeader.Set("Content-Type", contentType)

		part, err := writer.CreatePart(partHeader)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %q: %w", file.Field, err)
		}
		if file.Content != nil {
			if _, err := io.Copy(part, file.Content); err != nil {
				return nil, "", fmt.Errorf("copy form file %q: %w", file.Field, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// errorDetail picks the message of a failed response: a text body, a string "detail"
// field, or the status line. A non-string detail yields "".
func errorDetail(response ports.Response, fallback string) string {
	if response.IsJSON() {
		if !gjson.ValidBytes(response.Body) {
			return fallback
		}
		parsed := gjson.ParseBytes(response.Body)
		switch {
		case parsed.Type == gjson.String:
			return nonEmpty(parsed.String(), fallback)
		case parsed.IsObject():
			detail := parsed.Get("detail")
			if !detail.Exists() {
				return fallback
			}
			if detail.Type != gjson.String {
				return ""
			}
			return detail.String()
		default:
			return fallback
		}
	}

	return nonEmpty(strings.TrimSpace(response.Text()), fallback)
}

func statusLine(response *http.Response) string {
	if response.Status != "" {
		return response.Status
	}
	return fmt.Sprintf("%d %s", response.StatusCode, http.StatusText(response.StatusCode))
}

func nonEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
