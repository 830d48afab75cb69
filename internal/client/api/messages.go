package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
)

// Message fetches one chat message by id.
func (c *Client) Message(ctx context.Context, id int) (*models.Message, error) {
	var m models.Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/messages/%d", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMessage removes a chat message (moderation; MANAGE_EVENTS on the
// server side).
func (c *Client) DeleteMessage(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/messages/%d", id), nil, nil)
}
