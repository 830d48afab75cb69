package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
)

// Invites lists every invite. Owner-only on the server side.
func (c *Client) Invites(ctx context.Context) ([]*models.Invite, error) {
	var invites []*models.Invite
	if err := c.do(ctx, http.MethodGet, "/api/invites", nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// Invite fetches one invite by id.
func (c *Client) Invite(ctx context.Context, id int) (*models.Invite, error) {
	var invite models.Invite
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/invites/%d", id), nil, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

// DeleteInvite revokes an invite.
func (c *Client) DeleteInvite(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/invites/%d", id), nil, nil)
}

// VerifyInviteCode checks whether code still opens a registration. Used by
// the registration flow before asking for credentials.
func (c *Client) VerifyInviteCode(ctx context.Context, code string) (bool, error) {
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	err := c.do(ctx, http.MethodPost, "/api/invites/verify_code", body, nil)
	if err != nil {
		var apiErr *Error
		if asAPIError(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
