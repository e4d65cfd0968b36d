// Package gateway is the single configured HTTP client every feature API
// goes through: it injects the current credential, unwraps successful
// responses, and classifies failures into a fixed set of outcomes, notifying
// the user and invalidating the session where the classification demands it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-gamehub-client/notify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current access token. An empty string means the
// request goes out anonymously; many endpoints are public.
type TokenSource interface {
	AccessToken() string
}

// SessionHandler is invoked when an authenticated request comes back 401:
// the credential the caller held is no longer valid.
type SessionHandler interface {
	SessionExpired()
}

// Client is the shared HTTP gateway. All feature API packages are built on
// its verb methods.
type Client struct {
	baseURL  string
	http     *http.Client
	notifier notify.Notifier
	tokens   TokenSource
	sessions SessionHandler
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (primarily for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides the fixed request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTokenSource wires the credential source consulted before every
// request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithSessionHandler wires the hook invoked on authenticated 401 responses.
func WithSessionHandler(sh SessionHandler) Option {
	return func(c *Client) { c.sessions = sh }
}

// WithLogger sets the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a gateway rooted at baseURL. notifier receives the
// user-visible classification signals and must not be nil.
func New(baseURL string, notifier notify.Notifier, options ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		notifier: notifier,
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get performs a GET request. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post performs a POST request with a JSON body. body may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// PostMultipart performs a POST with a multipart/form-data body, used for
// avatar, screenshot, and media uploads.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return c.configurationError(errors.Wrap(err, "[Client.PostMultipart] WriteField"))
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return c.configurationError(errors.Wrap(err, "[Client.PostMultipart] CreateFormFile"))
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return c.configurationError(errors.Wrap(err, "[Client.PostMultipart] copy file"))
		}
	}
	if err := w.Close(); err != nil {
		return c.configurationError(errors.Wrap(err, "[Client.PostMultipart] close writer"))
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return c.configurationError(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.configurationError(errors.Wrap(err, "[Client.do] marshal body"))
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, params, reader)
	if err != nil {
		return c.configurationError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.newRequest] http.NewRequestWithContext")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	hadToken := false
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			hadToken = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Error("Network error, please check your connection")
		c.log.Warn().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Error("Network error, please check your connection")
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return c.configurationError(errors.Wrap(err, "[Client.send] decode response"))
		}
		return nil
	}

	return c.classify(resp.StatusCode, hadToken, data, req.URL.Path)
}

// classify turns a non-success response into an APIError, firing the
// user-visible signal and session invalidation the classification requires.
// The error always propagates to the caller for local recovery.
func (c *Client) classify(status int, hadToken bool, data []byte, path string) error {
	body := resolveErrorBody(data)

	switch status {
	case http.StatusUnauthorized:
		if hadToken {
			c.notifier.Error("Your session has expired, please log in again")
			if c.sessions != nil {
				c.sessions.SessionExpired()
			}
			return &APIError{Kind: KindSessionExpired, Status: status, Message: "session expired"}
		}
		// Anonymous 401: the endpoint wants auth, which callers probe for.
		c.log.Debug().Str("path", path).Msg("unauthenticated request rejected")
		return &APIError{Kind: KindAuthRejected, Status: status, Message: firstNonEmpty(body.surfaceMessage(), "authentication required")}

	case http.StatusForbidden:
		c.notifier.Error("You do not have permission to access this resource")
		return &APIError{Kind: KindForbidden, Status: status, Message: firstNonEmpty(body.surfaceMessage(), "forbidden")}

	case http.StatusNotFound:
		// Never surfaced: many flows probe existence and tolerate 404.
		c.log.Debug().Str("path", path).Msg("resource not found")
		return &APIError{Kind: KindNotFound, Status: status, Message: firstNonEmpty(body.surfaceMessage(), "not found")}

	case http.StatusInternalServerError:
		c.notifier.Error("Server error, please try again later")
		return &APIError{Kind: KindServer, Status: status, Message: firstNonEmpty(body.surfaceMessage(), "server error")}

	case http.StatusBadRequest:
		msg := body.firstFieldError()
		if msg == "" {
			msg = firstNonEmpty(body.surfaceMessage(), "Invalid request parameters")
		}
		c.notifier.Error(msg)
		return &APIError{Kind: KindValidation, Status: status, Message: msg, FieldErrors: body.fieldErrors}

	default:
		msg := body.surfaceMessage()
		if msg != "" {
			c.notifier.Error(msg)
		}
		return &APIError{Kind: KindUnknown, Status: status, Message: firstNonEmpty(msg, http.StatusText(status))}
	}
}

func (c *Client) configurationError(err error) error {
	c.notifier.Error("Request configuration error")
	c.log.Error().Err(err).Msg("request construction failed")
	return &APIError{Kind: KindConfiguration, Message: err.Error()}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
