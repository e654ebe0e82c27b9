// Package backend is the portal's SDK for the hosted auth/data service.
// It covers password sign-in/sign-up, sign-out, current-user retrieval,
// row access to the service's tables, and object storage, and exposes
// the cookie-forwarding jar the auth proxies depend on.
//
// The service itself is opaque: everything here is expressed in terms
// of its HTTP contract, and cmd/devbackend provides a local reference
// implementation of that contract for development and tests.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/models"
	"github.com/go-resty/resty/v2"
)

type authResponse struct {
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to the hosted auth/data service. A zero-value backend
// config produces an unconfigured client whose every call returns
// ErrNotConfigured, which the auth proxies translate into their 503
// "not configured" response.
type Client struct {
	http       *resty.Client
	anonKey    string
	configured bool
}

// NewClient builds a Client from the backend section of the server
// config. URL and AnonKey are both required for the client to be
// operational.
func NewClient(cfg config.Backend) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := &Client{
		anonKey:    cfg.AnonKey,
		configured: cfg.URL != "" && cfg.AnonKey != "",
	}
	if c.configured {
		c.http = resty.New().
			SetBaseURL(strings.TrimRight(cfg.URL, "/")).
			SetTimeout(cfg.Timeout)
	}

	return c
}

// Configured reports whether the client has both a service URL and an
// API key.
func (c *Client) Configured() bool {
	return c.configured
}

// SignInWithPassword performs the password grant. Cookies the service
// sets during the call (session issue, rotation, clearing) are
// collected into jar regardless of the outcome.
func (c *Client) SignInWithPassword(ctx context.Context, jar *CookieJar, email, password string) (*models.User, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	resp, err := c.request(ctx, jar).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("sign-in request: %w", err)
	}
	collect(jar, resp)

	if resp.IsError() {
		return nil, apiError(resp)
	}

	var body authResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}

	return body.User, nil
}

// SignUp creates an account. The returned session is nil when the
// service requires e-mail confirmation before issuing one.
func (c *Client) SignUp(ctx context.Context, jar *CookieJar, name, email, password string) (*models.User, *models.Session, error) {
	if !c.configured {
		return nil, nil, ErrNotConfigured
	}

	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name},
	}

	resp, err := c.request(ctx, jar).
		SetBody(payload).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, nil, fmt.Errorf("sign-up request: %w", err)
	}
	collect(jar, resp)

	if resp.IsError() {
		return nil, nil, apiError(resp)
	}

	var body authResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, nil, fmt.Errorf("decode sign-up response: %w", err)
	}

	return body.User, body.Session, nil
}

// SignOut invalidates the current session. The cookie-clearing
// instructions land in jar.
func (c *Client) SignOut(ctx context.Context, jar *CookieJar) error {
	if !c.configured {
		return ErrNotConfigured
	}

	resp, err := c.request(ctx, jar).Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("sign-out request: %w", err)
	}
	collect(jar, resp)

	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}

// GetUser resolves the session cookies in jar to the current user.
// An anonymous session is not an error: the result is (nil, nil).
func (c *Client) GetUser(ctx context.Context, jar *CookieJar) (*models.User, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	resp, err := c.request(ctx, jar).Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("get-user request: %w", err)
	}
	collect(jar, resp)

	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	var body authResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode get-user response: %w", err)
	}

	return body.User, nil
}

func (c *Client) request(ctx context.Context, jar *CookieJar) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetHeader("Content-Type", "application/json")
	if jar != nil {
		req.SetCookies(jar.Cookies())
	}
	return req
}

func collect(jar *CookieJar, resp *resty.Response) {
	if jar != nil {
		jar.Collect(resp.Cookies())
	}
}

// apiError maps a non-2xx backend response into an *APIError carrying
// the service's own status code and message.
func apiError(resp *resty.Response) error {
	var body errorResponse
	msg := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		msg = body.Error
		if msg == "" {
			msg = body.Message
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(resp.Body()))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	return &APIError{Status: resp.StatusCode(), Message: msg}
}
