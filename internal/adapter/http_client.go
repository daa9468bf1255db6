// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/models"
)

// Client is the shared HTTP transport for all Spajzka endpoints. It holds the
// resty client, the bearer token of the current session, and the device id
// attached to every request for tracing.
type Client struct {
	http     *resty.Client
	deviceID string
	logger   *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a *Client from the adapter configuration.
func NewClient(cfg config.Adapter, app config.App, log *logger.Logger) (*Client, error) {
	if cfg.HTTPAddress == "" {
		return nil, errors.New("adapter: empty http address")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &Client{http: cli, deviceID: app.DeviceID, logger: log}, nil
}

// SetToken stores the bearer token attached to all subsequent authenticated
// requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the currently stored bearer token, or an empty string if none
// has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register implements [AuthAPI].
func (c *Client) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return c.authenticate(ctx, "/api/auth/register", creds)
}

// Login implements [AuthAPI].
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return c.authenticate(ctx, "/api/auth/login", creds)
}

func (c *Client) authenticate(ctx context.Context, path string, creds models.Credentials) (models.Session, error) {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse user id: %w", err)
	}

	c.SetToken(token)
	return models.Session{UserID: userID, Login: creds.Login, Token: token}, nil
}

// Ping implements [AuthAPI].
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// request returns a resty request carrying the context, a fresh trace id, the
// device id, and the bearer token when one is set.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if c.deviceID != "" {
		req.SetHeader("X-Device-Id", c.deviceID)
	}
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode() == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrInternalServerError, resp.StatusCode())
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject claim")
	}
	return sub, nil
}

func decodeBody(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
