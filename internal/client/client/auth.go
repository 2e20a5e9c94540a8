package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
)

const (
	PathLogin  = "/api/auth/login"
	PathSignup = "/api/auth/signup"
	PathMe     = "/api/auth/me"
)

// Login authenticates with email and password. On success the returned token
// becomes the session token and is persisted; on failure the current session
// is left untouched.
func (c *Client) Login(ctx context.Context, creds models.LoginData) Result[models.AuthResponse] {
	res := Call[models.AuthResponse](ctx, c, http.MethodPost, PathLogin, WithJSONBody(creds))
	c.adoptSession(ctx, res)
	return res
}

// Signup creates an account and, like Login, adopts the returned token.
func (c *Client) Signup(ctx context.Context, data models.SignupData) Result[models.AuthResponse] {
	res := Call[models.AuthResponse](ctx, c, http.MethodPost, PathSignup, WithJSONBody(data))
	c.adoptSession(ctx, res)
	return res
}

// CurrentUser asks the server who the current token belongs to. Without a
// token the request is still sent and the server is expected to reject it.
func (c *Client) CurrentUser(ctx context.Context) Result[models.CurrentUser] {
	return Call[models.CurrentUser](ctx, c, http.MethodGet, PathMe)
}

func (c *Client) adoptSession(ctx context.Context, res Result[models.AuthResponse]) {
	if !res.OK() || res.Data.Token == "" {
		return
	}
	c.setToken(res.Data.Token)

	// the in-memory session stands even if it cannot be persisted
	if err := c.store.Save(ctx, res.Data.Token); err != nil {
		c.log.Error(ctx, "persist session token", "error", err)
	}
}
