package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// Me fetches the caller's own account.
func (c *Client) Me(ctx context.Context) (*models.Me, error) {
	var me models.Me
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// MeUpdate carries the fields of a profile edit. Unset fields are omitted
// from the request entirely, so "no change" never collides with "set empty".
type MeUpdate struct {
	Name     optional.Optional[string] `json:"name,omitzero" validate:"omitempty,max=32"`
	Password optional.Optional[string] `json:"password,omitzero"`
}

// UpdateMe submits a profile edit and, on success, overwrites me with the
// server-confirmed state.
func (c *Client) UpdateMe(ctx context.Context, me *models.Me, upd MeUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.Me
	if err := c.do(ctx, http.MethodPut, "/api/users/me", upd, &confirmed); err != nil {
		return err
	}
	*me = confirmed
	return nil
}

// MyGroups lists the caller's groups.
func (c *Client) MyGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, "/api/users/me/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// LeaveGroup removes the caller's own membership.
func (c *Client) LeaveGroup(ctx context.Context, groupID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/me/groups/%d", groupID), nil, nil)
}

// MyGroupPermissions lists the caller's grants within one group.
func (c *Client) MyGroupPermissions(ctx context.Context, groupID int) ([]models.UserGroupPermission, error) {
	var perms []models.UserGroupPermission
	path := fmt.Sprintf("/api/users/me/groups/%d/permissions", groupID)
	if err := c.do(ctx, http.MethodGet, path, nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// Avatar downloads the caller's avatar image bytes.
func (c *Client) Avatar(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/users/me/avatar"), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	var buf bytes.Buffer
	if err := c.sendRaw(req, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadAvatar replaces the caller's avatar. The image goes up as the
// multipart form field "avatar".
func (c *Client) UploadAvatar(ctx context.Context, filename string, image io.Reader) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("avatar", filename)
	if err != nil {
		return fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/users/me/avatar"), &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.send(req, nil)
}
