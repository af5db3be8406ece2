// internal/appwrite/users.go
package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

// Users wraps the store's administrative identity API. All calls
// require an admin-scoped client; a user's own session cannot read
// other identities.
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users { return &Users{c: c} }

// Get fetches an identity record by user ID.
func (u *Users) Get(ctx context.Context, userID string) (User, error) {
	var usr User
	err := u.c.call(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &usr)
	return usr, err
}
