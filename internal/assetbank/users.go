package assetbank

import (
	"context"
	"strconv"
)

// GetUser fetches a user by numeric id. Returns nil unless the result
// carries a nonzero id, the same "200 but absent" convention as asset
// details.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	user, err := fetchJSON[User](ctx, c, "/rest/users/"+strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	if user == nil || user.ID == 0 {
		return nil, nil
	}

	return user, nil
}

// GetCurrentUser fetches the user that owns the configured token.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return fetchJSON[User](ctx, c, "/rest/authenticated-user")
}

// IsValidAccessToken probes the current-user endpoint and reports
// whether the configured token works. This is the one place a hard
// failure is converted to a negative result: it is purely a credential
// health check.
func (c *Client) IsValidAccessToken(ctx context.Context) bool {
	user, err := c.GetCurrentUser(ctx)
	return err == nil && user != nil
}
