package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/client/session"
	"github.com/dmitrijs2005/apiclient/internal/logging"
	"github.com/dmitrijs2005/apiclient/internal/netx"
	"github.com/go-resty/resty/v2"
)

// TokenStore persists the session token between process runs.
// Load returns "" when nothing is stored; Remove of nothing is not an error.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

type Client struct {
	baseURL string
	http    *resty.Client
	store   TokenStore
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client during New.
type Option func(*Client) error

// WithLogger sets the diagnostic logger. Defaults to a discarding logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.log = l
		}
		return nil
	}
}

// WithHTTPTimeout bounds each request. Zero means no timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("http timeout must be >= 0, got %s", d)
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithTransport replaces the underlying http.RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt != nil {
			c.http.SetTransport(rt)
		}
		return nil
	}
}

// WithDebug dumps requests and responses to the logger at debug level.
// Dumps include the Authorization header.
func WithDebug(enabled bool) Option {
	return func(c *Client) error {
		c.http.SetDebug(enabled)
		return nil
	}
}

// New builds a Client for baseURL and reads the persisted session token from
// store once. A nil store keeps the session in memory only.
func New(ctx context.Context, baseURL string, store TokenStore, opts ...Option) (*Client, error) {
	base, err := netx.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = session.NewMemoryStore("")
	}

	c := &Client{
		baseURL: base,
		// the bearer token is the only session state; no cookie jar
		http:    resty.New().SetCookieJar(nil),
		store:   store,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.http.SetLogger(logging.NewRestyLogger(c.log))

	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	c.token = token

	return c, nil
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current session token and whether one is held.
func (c *Client) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// IsAuthenticated reports whether a token is held. Expiry is not checked.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.Token()
	return ok
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Logout drops the session without contacting the server. The in-memory
// token is always cleared; the returned error only reports a store failure.
func (c *Client) Logout(ctx context.Context) error {
	c.setToken("")
	if err := c.store.Remove(ctx); err != nil {
		c.log.Error(ctx, "remove persisted session token", "error", err)
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}
