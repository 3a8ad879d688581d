package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 10 * time.Second

// Client is a thin HTTP client for the WIL portal API. It is stateless:
// callers pass the bearer token to the calls that need one.
type Client struct {
	http *resty.Client
}

// New returns a client for baseURL, e.g. "http://localhost:3001/api".
// A scheme is assumed when missing. A non-positive timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// Login posts the credentials to POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	resp, err := c.request(ctx, "").
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login response: missing token")
	}
	return &out, nil
}

// Me returns the user the token was issued to.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	resp, err := c.request(ctx, token).SetResult(&out).Get("/auth/me")
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout revokes the token server side.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.request(ctx, token).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *Client) Programs(ctx context.Context) ([]Program, error) {
	var out struct {
		Programs []Program `json:"programs"`
	}
	resp, err := c.request(ctx, "").SetResult(&out).Get("/programs")
	if err != nil {
		return nil, fmt.Errorf("programs request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Programs, nil
}

func (c *Client) Program(ctx context.Context, slug string) (*Program, error) {
	var out struct {
		Program Program `json:"program"`
	}
	resp, err := c.request(ctx, "").
		SetPathParam("slug", slug).
		SetResult(&out).
		Get("/programs/{slug}")
	if err != nil {
		return nil, fmt.Errorf("program request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out.Program, nil
}

// SubmitApplication posts the flattened draft. A 400 comes back as an
// *APIError listing MissingFields.
func (c *Client) SubmitApplication(ctx context.Context, app Application) (*ApplicationReceipt, error) {
	var out ApplicationReceipt
	resp, err := c.request(ctx, "").
		SetHeader("Content-Type", "application/json").
		SetBody(app).
		SetResult(&out).
		Post("/applications")
	if err != nil {
		return nil, fmt.Errorf("application request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact posts a contact message and returns its id.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	resp, err := c.request(ctx, "").
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		SetResult(&out).
		Post("/contact")
	if err != nil {
		return "", fmt.Errorf("contact request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out struct {
		Stats Stats `json:"stats"`
	}
	resp, err := c.request(ctx, "").SetResult(&out).Get("/stats")
	if err != nil {
		return nil, fmt.Errorf("stats request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	resp, err := c.request(ctx, "").SetResult(&out).Get("/health")
	if err != nil {
		return nil, fmt.Errorf("health request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
