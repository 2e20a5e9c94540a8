package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
)

const (
	PathStatus    = "/api/status"
	PathProtected = "/api/protected"
	PathProfile   = "/api/profile"
	PathData      = "/api/data"
	PathHealth    = "/health"
)

func (c *Client) Status(ctx context.Context) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodGet, PathStatus)
}

func (c *Client) ProtectedData(ctx context.Context) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodGet, PathProtected)
}

func (c *Client) Profile(ctx context.Context) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodGet, PathProfile)
}

// UpdateProfile sends only the fields that are set.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodPut, PathProfile, WithJSONBody(upd))
}

func (c *Client) Data(ctx context.Context) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodGet, PathData)
}

func (c *Client) Health(ctx context.Context) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodGet, PathHealth)
}
