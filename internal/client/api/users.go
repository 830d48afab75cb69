package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
)

// User fetches one account by id.
func (c *Client) User(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Users lists every account. Owner-only on the server side.
func (c *Client) Users(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

// UserGroups lists the groups a user belongs to.
func (c *Client) UserGroups(ctx context.Context, id int) ([]*models.Group, error) {
	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/groups", id), nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
