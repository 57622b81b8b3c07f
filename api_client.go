package console

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// APIClient is the token-gated request wrapper used by every feature
// surface. It attaches the current session credential as a bearer header,
// normalizes failures into the console error taxonomy, and is the only
// component allowed to trigger logout outside an explicit user action: a
// 401 from any endpoint clears the session before ErrSessionExpired is
// surfaced. Non-401 failures are returned as ErrRequestFailed for the
// calling page to handle; no retry happens here.
type APIClient struct {
	http   *resty.Client
	bridge *Bridge
	scheme string
	logger Logger
}

func NewAPIClient(cfg Config, bridge *Bridge) *APIClient {
	client := resty.New().
		SetBaseURL(cfg.GetBaseURL()).
		SetTimeout(cfg.GetRequestTimeout())
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	scheme := cfg.GetAuthScheme()
	if scheme == "" {
		scheme = "Bearer"
	}

	return &APIClient{
		http:   client,
		bridge: bridge,
		scheme: scheme,
		logger: defLogger{},
	}
}

func (c *APIClient) WithLogger(logger Logger) *APIClient {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Get issues an authenticated GET and decodes the JSON body into out when
// out is non-nil.
func (c *APIClient) Get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out)
	return err
}

// Post issues an authenticated POST with a JSON body.
func (c *APIClient) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, body, out)
	return err
}

// Put issues an authenticated PUT with a JSON body.
func (c *APIClient) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, body, out)
	return err
}

// Delete issues an authenticated DELETE.
func (c *APIClient) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// GetRaw issues an authenticated GET and returns the raw body for callers
// that pluck fields out of loosely-shaped payloads.
func (c *APIClient) GetRaw(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) (*resty.Response, error) {
	session := c.bridge.Store().Session()
	if session == nil {
		return nil, ErrNoSession
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", c.scheme+" "+session.Token).
		SetHeader("X-Request-ID", uuid.NewString())
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("API request error", "method", method, "path", path, "error", err)
		return nil, goerrors.Wrap(err, ErrRequestFailed.Category, "API request failed").
			WithTextCode(ErrRequestFailed.TextCode)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		c.logger.Warn("API request unauthorized, forcing logout", "method", method, "path", path)
		if logoutErr := c.bridge.Logout(ctx); logoutErr != nil {
			c.logger.Error("Forced logout error", "error", logoutErr)
		}
		return nil, ErrSessionExpired
	}

	if !resp.IsSuccess() {
		c.logger.Warn("API request failed", "method", method, "path", path, "status", resp.StatusCode())
		return nil, goerrors.New("API request failed", ErrRequestFailed.Category).
			WithTextCode(ErrRequestFailed.TextCode).
			WithMetadata(map[string]any{
				"status": resp.StatusCode(),
				"path":   path,
			})
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return nil, goerrors.Wrap(err, ErrRequestFailed.Category, "failed to decode API response").
				WithTextCode(ErrRequestFailed.TextCode)
		}
	}

	return resp, nil
}
