// internal/appwrite/health.go
package appwrite

import (
	"context"
	"net/http"
)

// Health pings the remote store. Used at startup and by the health
// endpoint to verify connectivity.
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil, nil)
}
